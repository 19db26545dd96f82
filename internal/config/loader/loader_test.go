package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[log]
level = "debug"

[editor]
quitKeys = ["C-c", "Z"]
normalize = true
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, _ := GetByPath(config, "log.level"); v != "debug" {
		t.Errorf("log.level = %v, want debug", v)
	}
	if v, _ := GetByPath(config, "editor.normalize"); v != true {
		t.Errorf("editor.normalize = %v, want true", v)
	}
	keys, ok := GetByPath(config, "editor.quitKeys")
	if !ok {
		t.Fatal("editor.quitKeys missing")
	}
	if list, ok := keys.([]any); !ok || len(list) != 2 || list[1] != "Z" {
		t.Errorf("editor.quitKeys = %#v", keys)
	}
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config != nil {
		t.Errorf("config = %v, want nil", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[log]\nlevel = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q, want /bad.toml", perr.Path)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader("[ui]\nbackend = \"ansi\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if v, _ := GetByPath(config, "ui.backend"); v != "ansi" {
		t.Errorf("ui.backend = %v, want ansi", v)
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
log:
  level: warn
  file: /tmp/vi.log
editor:
  quitKeys:
    - q
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, _ := GetByPath(config, "log.level"); v != "warn" {
		t.Errorf("log.level = %v, want warn", v)
	}
	if v, _ := GetByPath(config, "log.file"); v != "/tmp/vi.log" {
		t.Errorf("log.file = %v", v)
	}
	keys, _ := GetByPath(config, "editor.quitKeys")
	if list, ok := keys.([]any); !ok || len(list) != 1 || list[0] != "q" {
		t.Errorf("editor.quitKeys = %#v", keys)
	}
}

func TestYAMLLoader_EmptyAndInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.yml", "")
	memfs.AddFile("/bad.yml", "log: [unclosed\n")

	config, err := NewYAMLLoaderWithFS(memfs, "/empty.yml").Load()
	if err != nil {
		t.Fatalf("empty Load failed: %v", err)
	}
	if config == nil || len(config) != 0 {
		t.Errorf("empty config = %v, want empty map", config)
	}

	_, err = NewYAMLLoaderWithFS(memfs, "/bad.yml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("err = %v, want *ParseError", err)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/a/config.toml", false},
		{"/a/config.yaml", false},
		{"/a/config.YML", false},
		{"/a/config.json", true},
		{"/a/config", true},
	}
	for _, tt := range tests {
		_, err := ForPath(NewMemFS(), tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForPath(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ForPath(%q) err = %v, want ErrUnsupportedFormat", tt.path, err)
		}
	}
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a", Line: 1, Column: 2, Message: "m"}, "parse error in a at line 1, column 2: m"},
		{&ParseError{Path: "a", Line: 3, Message: "m"}, "parse error in a at line 3: m"},
		{&ParseError{Path: "a", Message: "m"}, "parse error in a: m"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
