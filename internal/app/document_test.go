package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello world\r\nbye\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path, false)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if doc.Name != "notes.txt" || doc.NewFile {
		t.Errorf("doc = %+v", doc)
	}
	if doc.Buffer.LineCount() != 2 || doc.Buffer.LineText(0) != "hello world" {
		t.Errorf("buffer lines = %d, first %q", doc.Buffer.LineCount(), doc.Buffer.LineText(0))
	}
	if doc.Words.Len() != 3 {
		t.Errorf("words = %v, want 3", doc.Words.Ends())
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	doc, err := LoadDocument(filepath.Join(t.TempDir(), "new.txt"), false)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if !doc.NewFile {
		t.Error("NewFile should be set")
	}
	if doc.Buffer.LineCount() != 1 || doc.Buffer.LineLen(0) != 0 {
		t.Error("missing file should open one empty line")
	}
	if doc.Words.Len() != 0 {
		t.Errorf("words = %v, want none", doc.Words.Ends())
	}
}

func TestLoadDocumentDirectory(t *testing.T) {
	_, err := LoadDocument(t.TempDir(), false)
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Errorf("err = %v, want open OperationError", err)
	}
}

func TestNewDocumentNormalize(t *testing.T) {
	decomposed := "e\u0301"

	raw := NewDocument("x", decomposed, false)
	if raw.Buffer.LineLen(0) != 2 {
		t.Errorf("raw LineLen = %d, want 2", raw.Buffer.LineLen(0))
	}

	nfc := NewDocument("x", decomposed, true)
	if nfc.Buffer.LineLen(0) != 1 || nfc.Buffer.LineText(0) != "\u00e9" {
		t.Errorf("normalized line = %q", nfc.Buffer.LineText(0))
	}
}
