package key

import "strings"

// Modifiers is the set of modifier flags held during a single press.
// The flags occupy bits 8-11 of a press so they can be OR'ed with a Code.
type Modifiers uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifiers = 0

	// ModWinCtrl is the secondary control flag: Ctrl on macOS, Win/Super elsewhere.
	ModWinCtrl Modifiers = 1 << 8

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifiers = 1 << 9

	// ModShift indicates the Shift key.
	ModShift Modifiers = 1 << 10

	// ModCtrlCmd is the primary control flag: Cmd on macOS, Ctrl elsewhere.
	ModCtrlCmd Modifiers = 1 << 11
)

// modifierMask covers every modifier bit.
const modifierMask = ModWinCtrl | ModAlt | ModShift | ModCtrlCmd

// Has returns true if m contains the specified modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// With returns a new Modifiers with the specified modifier added.
func (m Modifiers) With(mod Modifiers) Modifiers {
	return m | mod
}

// Without returns a new Modifiers with the specified modifier removed.
func (m Modifiers) Without(mod Modifiers) Modifiers {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifiers) IsEmpty() bool {
	return m&modifierMask == ModNone
}

// String returns a platform-neutral representation like "CtrlCmd+Shift".
func (m Modifiers) String() string {
	if m.IsEmpty() {
		return ""
	}

	var parts []string
	if m.Has(ModCtrlCmd) {
		parts = append(parts, "CtrlCmd")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModWinCtrl) {
		parts = append(parts, "WinCtrl")
	}
	return strings.Join(parts, "+")
}
