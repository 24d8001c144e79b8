// Package key provides key codes, modifiers and the packed Chord value used
// by the keybinding engine.
//
// This package defines the fundamental types for representing key presses:
//
//   - Code: Identifies a physical key (letters, digits, function keys, ...)
//   - Modifiers: The modifier flags held during a press (CtrlCmd, Shift, Alt, WinCtrl)
//   - Chord: One press, or two presses forming a chord, packed into a uint32
//   - Platform: Selects the Mac or non-Mac meaning of "ctrl", "cmd" and "win"
//
// # Key Text
//
// Keybindings are written the way users type them in an overrides file:
//
//   - Simple keys: "a", "f5", "escape", "uparrow"
//   - With modifiers: "ctrl+s", "alt+f4", "ctrl+shift+p"
//   - Chords: "ctrl+k ctrl+s" (first press, a space, then the second press)
//
// Read parses this text; Write renders a Chord back using a canonical
// modifier order. Unknown key names read as the unbound Chord 0.
package key
