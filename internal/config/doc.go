// Package config loads the editor configuration.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← VITEDITOR_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/viteditor/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML, chosen by extension:
//
//	# ~/.config/viteditor/config.toml
//	[log]
//	level = "debug"
//	file = "/tmp/viteditor.log"
//
//	[ui]
//	backend = "tcell"
//
//	[editor]
//	quitKeys = ["C-c", "q"]
//	normalize = false
//
// The merged layers are decoded into a typed Config and validated. Bad
// values are reported as *ValidationError, which matches
// ErrValidationFailed with errors.Is.
package config
