package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable the editor reads.
const EnvPrefix = "VITEDITOR_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default variable mapping.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWithMapping(DefaultEnvMapping())
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		mapping: mapping,
		lookup:  os.LookupEnv,
	}
}

// DefaultEnvMapping returns the default environment variable mappings.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "LOG_LEVEL": "log.level",
		EnvPrefix + "LOG_FILE":  "log.file",
		EnvPrefix + "BACKEND":   "ui.backend",
		EnvPrefix + "QUIT_KEYS": "editor.quitKeys",
		EnvPrefix + "NORMALIZE": "editor.normalize",
	}
}

// Load reads the mapped environment variables.
// Empty values are treated as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			SetByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// parseValue converts booleans (including 1 and 0) and integers; comma
// lists become []any.
// Everything else stays a string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		list := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		return list
	}
	return s
}
