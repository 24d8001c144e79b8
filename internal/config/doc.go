// Package config loads keybind settings.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← KEYBIND_PLATFORM, KEYBIND_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/keybind/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Command line flags are applied on top by the caller.
//
// # Config File
//
//	platform = "auto"            # auto, linux, windows or mac
//
//	[log]
//	level = "info"               # debug, info, warn or error
//
//	[keybindings]
//	path = "~/.config/keybind/keybindings.json"
//	watch = true
//	debounce = "250ms"
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading
//   - keybindings: the user keybindings override file
//   - watcher: debounced change notification for the override file
package config
