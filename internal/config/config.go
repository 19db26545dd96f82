package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/viteditor/internal/config/loader"
	"github.com/dshills/viteditor/internal/input/key"
)

// Backend names accepted by ui.backend.
const (
	BackendTerminal = "tcell"
	BackendStream   = "ansi"
)

// Config holds the decoded editor settings.
type Config struct {
	Log    LogConfig
	UI     UIConfig
	Editor EditorConfig

	// Source is the config file that was read, or "" if none.
	Source string
}

// LogConfig holds the log.* settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string
	// File is the log file path. Empty disables logging.
	File string
}

// UIConfig holds the ui.* settings.
type UIConfig struct {
	// Backend selects the terminal backend: tcell or ansi.
	Backend string
}

// EditorConfig holds the editor.* settings.
type EditorConfig struct {
	// QuitKeys exit the editor from Normal mode.
	QuitKeys []string
	// Normalize applies Unicode NFC to file content on load.
	Normalize bool
}

// Defaults returns the built-in default settings as a nested map.
func Defaults() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"ui": map[string]any{
			"backend": BackendTerminal,
		},
		"editor": map[string]any{
			"quitKeys":  []any{"C-c", "q"},
			"normalize": false,
		},
	}
}

// Options controls which layers Load reads.
type Options struct {
	// Path is the config file. Empty selects DefaultPath; a missing
	// default file is not an error.
	Path string

	// FS reads the config file. Nil uses the OS file system.
	FS loader.FileSystem

	// SkipEnv disables the environment layer.
	SkipEnv bool

	// Overrides is the flag layer, keyed by dot path ("log.level").
	Overrides map[string]any
}

// DefaultPath returns the first existing config file under the user
// config directory, or the TOML path if none exists.
func DefaultPath(fsys loader.FileSystem) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	base := filepath.Join(dir, "viteditor")
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(base, name)
		if _, err := fsys.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(base, "config.toml")
}

// Load merges defaults, the config file, the environment and overrides,
// then decodes and validates the result.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	explicit := opts.Path != ""
	path := opts.Path
	if !explicit {
		path = DefaultPath(fsys)
	}

	merged := Defaults()
	source := ""

	if path != "" {
		fl, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		data, err := fl.Load()
		if err != nil {
			return nil, err
		}
		if data == nil && explicit {
			return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		if data != nil {
			merged = loader.DeepMerge(merged, data)
			source = path
		}
	}

	if !opts.SkipEnv {
		env, err := loader.NewEnvLoader().Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, env)
	}

	for p, v := range opts.Overrides {
		loader.SetByPath(merged, p, v)
	}

	cfg, err := Decode(merged)
	if err != nil {
		return nil, err
	}
	cfg.Source = source
	return cfg, nil
}

// Decode converts a merged settings map into a validated Config.
func Decode(data map[string]any) (*Config, error) {
	cfg := &Config{}
	var err error

	if cfg.Log.Level, err = getString(data, "log.level"); err != nil {
		return nil, err
	}
	if cfg.Log.File, err = getString(data, "log.file"); err != nil {
		return nil, err
	}
	if cfg.UI.Backend, err = getString(data, "ui.backend"); err != nil {
		return nil, err
	}
	if cfg.Editor.QuitKeys, err = getStringList(data, "editor.quitKeys"); err != nil {
		return nil, err
	}
	if cfg.Editor.Normalize, err = getBool(data, "editor.normalize"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting for a usable value.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		}
	}

	switch c.UI.Backend {
	case BackendTerminal, BackendStream:
	default:
		return &ValidationError{
			Path:    "ui.backend",
			Message: "must be tcell or ansi",
			Value:   c.UI.Backend,
			Code:    ErrCodeInvalidEnum,
		}
	}

	for _, spec := range c.Editor.QuitKeys {
		if _, err := key.Parse(spec); err != nil {
			return &ValidationError{
				Path:    "editor.quitKeys",
				Message: err.Error(),
				Value:   spec,
				Code:    ErrCodeInvalidKey,
			}
		}
	}
	return nil
}

func getString(data map[string]any, path string) (string, error) {
	v, ok := loader.GetByPath(data, path)
	if !ok {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case int64, int, float64, bool:
		return fmt.Sprint(t), nil
	}
	return "", typeError(path, "string", v)
}

func getBool(data map[string]any, path string) (bool, error) {
	v, ok := loader.GetByPath(data, path)
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeError(path, "bool", v)
	}
	return b, nil
}

// getStringList accepts a list of strings or a single comma-separated string.
func getStringList(data map[string]any, path string) ([]string, error) {
	v, ok := loader.GetByPath(data, path)
	if !ok {
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		var out []string
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	case []string:
		return append([]string(nil), t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, typeError(path, "list of strings", v)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, typeError(path, "list of strings", v)
}
