// Package config loads calcterm settings.
//
// Settings are resolved in layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CALCTERM_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/calcterm/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing config file is not an error; the defaults apply. Unknown keys in
// the file are rejected so typos surface early.
//
// # Example
//
//	[theme]
//	text = "#FFFFFF"
//	selected = "240"
//
//	[keys]
//	quit = "q"
//
//	[keys.aliases]
//	"*" = "x"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/calcterm.log"
//
// The watcher sub-package reports edits to the file so the application can
// reload it while running.
package config
