// Package words builds the word index used by word motion.
//
// Parse is the word-boundary parser: it splits the flattened text of a
// document into words using Unicode word segmentation and records where
// each word ends. The index is built once when a document is opened and is
// only consulted afterwards.
//
// Offsets count characters (runes) in the flattened text, where every line
// break counts as a single character. This matches buffer.Buffer.Offset.
package words

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Index is an ordered list of word-end offsets plus a read pointer.
//
// Ends are exclusive: a word occupying offsets [3, 7) has end 7.
type Index struct {
	ends []int

	// current is the word the pointer is on.
	current int

	// charIndex counts characters from the start of the current word.
	charIndex int
}

// Parse segments text into words and returns their end offsets.
// Segments made only of whitespace are not words.
func Parse(text string) *Index {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var ends []int
	offset := 0
	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		offset += len([]rune(word))
		if !isBlank(word) {
			ends = append(ends, offset)
		}
	}
	return &Index{ends: ends}
}

// NewIndex creates an index from precomputed end offsets.
// Offsets must be strictly increasing.
func NewIndex(ends []int) *Index {
	cp := make([]int, len(ends))
	copy(cp, ends)
	return &Index{ends: cp}
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Len returns the number of words.
func (x *Index) Len() int {
	return len(x.ends)
}

// Ends returns a copy of the word-end offsets.
func (x *Index) Ends() []int {
	cp := make([]int, len(x.ends))
	copy(cp, x.ends)
	return cp
}

// Current returns the index of the word under the pointer.
// It equals Len() when the pointer is past the last word.
func (x *Index) Current() int {
	return x.current
}

// CharIndex returns the pointer's character offset inside the current word.
func (x *Index) CharIndex() int {
	return x.charIndex
}

// start returns the offset where word i begins, the end of the previous word.
func (x *Index) start(i int) int {
	if i == 0 {
		return 0
	}
	return x.ends[i-1]
}

// WordLen returns the distance between the boundary before word i and its end.
func (x *Index) WordLen(i int) int {
	if i < 0 || i >= len(x.ends) {
		return 0
	}
	return x.ends[i] - x.start(i)
}

// Seek moves the pointer to the first word ending after offset.
// It returns false if no word ends after offset.
func (x *Index) Seek(offset int) bool {
	x.current = sort.SearchInts(x.ends, offset+1)
	if x.current >= len(x.ends) {
		x.charIndex = 0
		return false
	}
	x.charIndex = max(offset-x.start(x.current), 0)
	return true
}

// Remaining returns the distance from the pointer to the end of the current
// word, or 0 when the pointer is past the last word.
func (x *Index) Remaining() int {
	if x.current >= len(x.ends) {
		return 0
	}
	return max(x.WordLen(x.current)-x.charIndex, 0)
}

// Advance moves the pointer to the start of the next word.
func (x *Index) Advance() {
	if x.current < len(x.ends) {
		x.current++
	}
	x.charIndex = 0
}

// Reset moves the pointer back to the first word.
func (x *Index) Reset() {
	x.current = 0
	x.charIndex = 0
}
