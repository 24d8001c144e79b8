package key

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects how modifier names map onto modifier flags.
type Platform int

const (
	// Linux uses the non-Mac convention: ctrl is the primary modifier.
	Linux Platform = iota
	// Windows uses the non-Mac convention.
	Windows
	// Mac maps cmd to the primary modifier and ctrl to the secondary one.
	Mac
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	case Mac:
		return "mac"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// IsMac reports whether p follows the Mac modifier convention.
func (p Platform) IsMac() bool {
	return p == Mac
}

// CurrentPlatform returns the platform the process runs on.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin", "ios":
		return Mac
	case "windows":
		return Windows
	default:
		return Linux
	}
}

// ParsePlatform parses a platform name. "auto" and "" select CurrentPlatform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CurrentPlatform(), nil
	case "mac", "macos", "darwin":
		return Mac, nil
	case "linux":
		return Linux, nil
	case "windows", "win":
		return Windows, nil
	default:
		return Linux, fmt.Errorf("unknown platform %q", s)
	}
}

// Ctrl returns the flag the physical ctrl key sets on p.
func (p Platform) Ctrl() Modifiers {
	if p.IsMac() {
		return ModWinCtrl
	}
	return ModCtrlCmd
}

// Meta returns the flag the cmd or win key sets on p.
func (p Platform) Meta() Modifiers {
	if p.IsMac() {
		return ModCtrlCmd
	}
	return ModWinCtrl
}

// modifierFor returns the flag a modifier token selects on p.
func (p Platform) modifierFor(token string) Modifiers {
	switch token {
	case "shift":
		return ModShift
	case "alt":
		return ModAlt
	case "ctrl":
		return p.Ctrl()
	case "cmd", "meta", "win":
		return p.Meta()
	}
	return ModNone
}
