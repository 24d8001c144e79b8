package key

import "strings"

// modifierTokens are the names that may prefix a key, each followed by
// '+' or '-'.
var modifierTokens = []string{"ctrl", "shift", "alt", "meta", "win", "cmd"}

// Read parses keybinding text such as "ctrl+shift+p" or "ctrl+k ctrl+s"
// into a Chord, interpreting modifier names for platform p.
//
// Reading never fails: empty text, unknown key names, or text with more than
// two presses yield None. A chord whose second press does not parse reads as
// its first press alone.
func Read(text string, p Platform) Chord {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return None
	}

	firstText, rest, hasRest := strings.Cut(text, " ")
	first := readPress(firstText, p)
	if first == None {
		return None
	}
	if !hasRest {
		return first
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return first
	}
	// An unknown second press composes as None and leaves the first press.
	second := Read(rest, p)
	if second.HasChord() {
		return None
	}
	return NewChord(first, second)
}

// readPress parses a single press: modifier tokens followed by a key name.
func readPress(text string, p Platform) Chord {
	var mods Modifiers
	for {
		token, ok := leadingModifier(text)
		if !ok {
			break
		}
		mods = mods.With(p.modifierFor(token))
		text = text[len(token)+1:]
	}

	code := CodeFromName(text)
	if code == Unknown {
		return None
	}
	return Encode(mods, code)
}

// leadingModifier reports the modifier token text starts with, if the token
// is followed by a separator and something after it.
func leadingModifier(text string) (string, bool) {
	for _, token := range modifierTokens {
		if len(text) > len(token)+1 && strings.HasPrefix(text, token) {
			if sep := text[len(token)]; sep == '+' || sep == '-' {
				return token, true
			}
		}
	}
	return "", false
}

// Write renders c as keybinding text for platform p. Modifiers are written
// in the order ctrl, shift, alt, then cmd (Mac) or win (others).
// None renders as the empty string.
func Write(c Chord, p Platform) string {
	if c == None {
		return ""
	}
	first := writePress(c.First(), p)
	if !c.HasChord() {
		return first
	}
	return first + " " + writePress(c.Second(), p)
}

func writePress(c Chord, p Platform) string {
	mods, code := c.Decode()

	var sb strings.Builder
	ctrl, meta := ModCtrlCmd, ModWinCtrl
	metaName := "win"
	if p.IsMac() {
		ctrl, meta = ModWinCtrl, ModCtrlCmd
		metaName = "cmd"
	}

	if mods.Has(ctrl) {
		sb.WriteString("ctrl+")
	}
	if mods.Has(ModShift) {
		sb.WriteString("shift+")
	}
	if mods.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if mods.Has(meta) {
		sb.WriteString(metaName)
		sb.WriteString("+")
	}
	sb.WriteString(code.String())
	return sb.String()
}

// Normalize parses and re-writes keybinding text in its canonical form.
// Text that does not parse normalizes to the empty string.
func Normalize(text string, p Platform) string {
	return Write(Read(text, p), p)
}
