// Package termkey converts terminal key events into keybinding chords.
package termkey

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/input/key"
)

// specialKeys maps tcell's named keys onto key codes.
var specialKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.Escape,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Insert,
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.UpArrow,
	tcell.KeyDown:       key.DownArrow,
	tcell.KeyLeft:       key.LeftArrow,
	tcell.KeyRight:      key.RightArrow,
	tcell.KeyPause:      key.PauseBreak,
	tcell.KeyF1:         key.F1,
	tcell.KeyF2:         key.F2,
	tcell.KeyF3:         key.F3,
	tcell.KeyF4:         key.F4,
	tcell.KeyF5:         key.F5,
	tcell.KeyF6:         key.F6,
	tcell.KeyF7:         key.F7,
	tcell.KeyF8:         key.F8,
	tcell.KeyF9:         key.F9,
	tcell.KeyF10:        key.F10,
	tcell.KeyF11:        key.F11,
	tcell.KeyF12:        key.F12,
	tcell.KeyF13:        key.F13,
	tcell.KeyF14:        key.F14,
	tcell.KeyF15:        key.F15,
	tcell.KeyF16:        key.F16,
	tcell.KeyF17:        key.F17,
	tcell.KeyF18:        key.F18,
	tcell.KeyF19:        key.F19,
}

// FromEvent converts ev into a single-press chord for platform p. Control
// codes such as Ctrl-K arrive as their own tcell keys and become ctrl+k.
// Events with no equivalent key code return key.None.
func FromEvent(ev *tcell.EventKey, p key.Platform) key.Chord {
	if ev == nil {
		return key.None
	}
	mods := convertMod(ev.Modifiers(), p)
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		code, shifted := runeCode(ev.Rune())
		if code == key.Unknown {
			return key.None
		}
		if shifted {
			mods = mods.With(key.ModShift)
		}
		return key.Encode(mods, code)

	case k == tcell.KeyCtrlSpace:
		return key.Encode(mods.With(p.Ctrl()), key.Space)

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.Encode(mods.With(p.Ctrl()), key.KeyA+key.Code(k-tcell.KeyCtrlA))

	case k == tcell.KeyBacktab:
		return key.Encode(mods.With(key.ModShift), key.Tab)
	}

	if code, ok := specialKeys[k]; ok {
		return key.Encode(mods, code)
	}
	return key.None
}

// runeCode maps a typed rune onto a key code. Upper-case letters report
// shifted as true.
func runeCode(r rune) (code key.Code, shifted bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return key.KeyA + key.Code(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return key.KeyA + key.Code(r-'A'), true
	case r >= '0' && r <= '9':
		return key.Digit0 + key.Code(r-'0'), false
	case r == ' ':
		return key.Space, false
	case r > unicode.MaxASCII:
		return key.Unknown, false
	}
	return key.CodeFromName(string(r)), false
}

// convertMod converts tcell modifier flags for platform p.
func convertMod(m tcell.ModMask, p key.Platform) key.Modifiers {
	var result key.Modifiers
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(p.Ctrl())
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(p.Meta())
	}
	return result
}
