package words

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"empty", "", nil},
		{"single word", "hello", []int{5}},
		{"two words", "hello world", []int{5, 11}},
		{"leading space", "  ab", []int{4}},
		{"punctuation", "a, b", []int{1, 2, 4}},
		{"multiline", "ab\ncd", []int{2, 5}},
		{"crlf counts one", "ab\r\ncd", []int{2, 5}},
		{"unicode", "héllo 世", []int{5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text).Ends()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseEndsIncrease(t *testing.T) {
	ends := Parse("The quick (brown) fox, jumps!\nover the lazy dog.").Ends()
	for i := 1; i < len(ends); i++ {
		if ends[i] <= ends[i-1] {
			t.Fatalf("ends not increasing at %d: %v", i, ends)
		}
	}
}

func TestWordLen(t *testing.T) {
	x := NewIndex([]int{5, 11})

	if x.WordLen(0) != 5 {
		t.Errorf("WordLen(0) = %d, want 5", x.WordLen(0))
	}
	if x.WordLen(1) != 6 {
		t.Errorf("WordLen(1) = %d, want 6", x.WordLen(1))
	}
	if x.WordLen(2) != 0 {
		t.Errorf("WordLen out of range = %d, want 0", x.WordLen(2))
	}
}

func TestSeek(t *testing.T) {
	x := NewIndex([]int{5, 11})

	tests := []struct {
		offset    int
		ok        bool
		current   int
		charIndex int
		remaining int
	}{
		{0, true, 0, 0, 5},
		{3, true, 0, 3, 2},
		{5, true, 1, 0, 6},
		{8, true, 1, 3, 3},
		{11, false, 2, 0, 0},
	}

	for _, tt := range tests {
		if ok := x.Seek(tt.offset); ok != tt.ok {
			t.Errorf("Seek(%d) = %v, want %v", tt.offset, ok, tt.ok)
		}
		if x.Current() != tt.current || x.CharIndex() != tt.charIndex {
			t.Errorf("Seek(%d): pointer (%d,%d), want (%d,%d)", tt.offset, x.Current(), x.CharIndex(), tt.current, tt.charIndex)
		}
		if x.Remaining() != tt.remaining {
			t.Errorf("Seek(%d): Remaining() = %d, want %d", tt.offset, x.Remaining(), tt.remaining)
		}
	}
}

func TestAdvanceAndReset(t *testing.T) {
	x := NewIndex([]int{2, 4})
	x.Seek(1)

	x.Advance()
	if x.Current() != 1 || x.CharIndex() != 0 {
		t.Errorf("after Advance pointer = (%d,%d)", x.Current(), x.CharIndex())
	}
	x.Advance()
	x.Advance()
	if x.Current() != 2 {
		t.Errorf("Advance past end should stop at Len(), got %d", x.Current())
	}

	x.Reset()
	if x.Current() != 0 {
		t.Errorf("Reset left pointer at %d", x.Current())
	}
}

func TestNewIndexCopies(t *testing.T) {
	ends := []int{1, 2}
	x := NewIndex(ends)
	ends[0] = 9

	if x.Ends()[0] != 1 {
		t.Error("NewIndex should copy its input")
	}
}
