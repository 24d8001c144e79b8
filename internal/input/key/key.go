package key

import (
	"fmt"
	"strings"
)

// Code identifies a keyboard key. Codes fit in the low 8 bits of a press.
type Code uint8

const (
	// Unknown is the zero code. A press with an Unknown code is never bound.
	Unknown Code = iota

	Backspace
	Tab
	Enter
	Shift
	Ctrl
	Alt
	PauseBreak
	CapsLock
	Escape
	Space
	PageUp
	PageDown
	End
	Home
	LeftArrow
	UpArrow
	RightArrow
	DownArrow
	Insert
	Delete

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Meta
	ContextMenu

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19

	NumLock
	ScrollLock

	// US layout punctuation
	Semicolon
	Equal
	Comma
	Minus
	Period
	Slash
	Backquote
	BracketLeft
	Backslash
	BracketRight
	Quote
	OEM8
	OEM102

	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadMultiply
	NumpadAdd
	NumpadSeparator
	NumpadSubtract
	NumpadDecimal
	NumpadDivide

	// maxCode is one past the last valid code.
	maxCode
)

// codeNames holds the canonical text name of every code, indexed by code.
var codeNames = [maxCode]string{
	Unknown:    "",
	Backspace:  "backspace",
	Tab:        "tab",
	Enter:      "enter",
	Shift:      "shift",
	Ctrl:       "ctrl",
	Alt:        "alt",
	PauseBreak: "pausebreak",
	CapsLock:   "capslock",
	Escape:     "escape",
	Space:      "space",
	PageUp:     "pageup",
	PageDown:   "pagedown",
	End:        "end",
	Home:       "home",
	LeftArrow:  "leftarrow",
	UpArrow:    "uparrow",
	RightArrow: "rightarrow",
	DownArrow:  "downarrow",
	Insert:     "insert",
	Delete:     "delete",

	Meta:        "meta",
	ContextMenu: "contextmenu",

	NumLock:    "numlock",
	ScrollLock: "scrolllock",

	Semicolon:    ";",
	Equal:        "=",
	Comma:        ",",
	Minus:        "-",
	Period:       ".",
	Slash:        "/",
	Backquote:    "`",
	BracketLeft:  "[",
	Backslash:    "\\",
	BracketRight: "]",
	Quote:        "'",
	OEM8:         "oem_8",
	OEM102:       "oem_102",

	NumpadMultiply:  "numpad_multiply",
	NumpadAdd:       "numpad_add",
	NumpadSeparator: "numpad_separator",
	NumpadSubtract:  "numpad_subtract",
	NumpadDecimal:   "numpad_decimal",
	NumpadDivide:    "numpad_divide",
}

// nameToCode maps lowercase key names to codes.
var nameToCode map[string]Code

func init() {
	for c := Digit0; c <= Digit9; c++ {
		codeNames[c] = string(rune('0' + (c - Digit0)))
	}
	for c := KeyA; c <= KeyZ; c++ {
		codeNames[c] = string(rune('a' + (c - KeyA)))
	}
	for c := F1; c <= F19; c++ {
		codeNames[c] = fmt.Sprintf("f%d", c-F1+1)
	}
	for c := Numpad0; c <= Numpad9; c++ {
		codeNames[c] = fmt.Sprintf("numpad%d", c-Numpad0)
	}

	nameToCode = make(map[string]Code, len(codeNames)+len(codeAliases))
	for c, name := range codeNames {
		if name != "" {
			nameToCode[name] = Code(c)
		}
	}
	for alias, c := range codeAliases {
		nameToCode[alias] = c
	}
}

// codeAliases are accepted when reading but never written.
var codeAliases = map[string]Code{
	"up":     UpArrow,
	"down":   DownArrow,
	"left":   LeftArrow,
	"right":  RightArrow,
	"esc":    Escape,
	"return": Enter,
	"del":    Delete,
	"ins":    Insert,
	"pgup":   PageUp,
	"pgdn":   PageDown,
}

// String returns the canonical lowercase name of the code, as used in
// keybinding text. Unknown codes render as "Code(n)".
func (c Code) String() string {
	if c < maxCode && codeNames[c] != "" {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// IsValid reports whether c is a known, non-zero code.
func (c Code) IsValid() bool {
	return c != Unknown && c < maxCode
}

// IsFunctionKey returns true if this is a function key (F1-F19).
func (c Code) IsFunctionKey() bool {
	return c >= F1 && c <= F19
}

// IsArrowKey returns true if this is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= LeftArrow && c <= DownArrow
}

// IsModifierKey returns true for keys that are themselves modifiers.
func (c Code) IsModifierKey() bool {
	return c == Shift || c == Ctrl || c == Alt || c == Meta
}

// CodeFromName returns the Code for a given name (case-insensitive).
// Returns Unknown if the name is not recognized.
func CodeFromName(name string) Code {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := nameToCode[name]; ok {
		return c
	}
	return Unknown
}
