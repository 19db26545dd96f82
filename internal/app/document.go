package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/viteditor/internal/engine/buffer"
	"github.com/dshills/viteditor/internal/engine/words"
)

// Document is the file being edited together with its derived word index.
type Document struct {
	// Path is the file path as given.
	Path string

	// Name is the display name.
	Name string

	// Buffer holds the content.
	Buffer *buffer.Buffer

	// Words is the word index parsed from the content at load time.
	Words *words.Index

	// NewFile is true when the path did not exist.
	NewFile bool
}

// NewDocument creates a document from content already in memory.
// With normalize set the content is converted to Unicode NFC first.
func NewDocument(path, content string, normalize bool) *Document {
	if normalize {
		content = norm.NFC.String(content)
	}

	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	return &Document{
		Path:   path,
		Name:   name,
		Buffer: buffer.NewBufferFromString(content),
		Words:  words.Parse(content),
	}
}

// LoadDocument reads path into a document. A missing file yields an empty
// document marked NewFile; any other read error is returned.
func LoadDocument(path string, normalize bool) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc := NewDocument(path, "", normalize)
			doc.NewFile = true
			return doc, nil
		}
		return nil, NewOperationError("open", path, err)
	}
	return NewDocument(path, string(data), normalize), nil
}
