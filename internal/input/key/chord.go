package key

// Chord is a packed keybinding: one key press, optionally followed by a
// second press that completes a two-key chord.
//
// Layout:
//
//	bits  0-7   first press key code
//	bits  8-11  first press modifiers
//	bits 16-23  second press key code
//	bits 24-27  second press modifiers
//
// A non-zero high half marks the value as a chord. The zero Chord means
// "unbound".
type Chord uint32

// None is the unbound Chord.
const None Chord = 0

const (
	pressMask  = 0x0000FFFF
	chordShift = 16
	codeMask   = 0x00FF
)

// Encode packs modifiers and a key code into a single-press Chord.
func Encode(mods Modifiers, code Code) Chord {
	return Chord(uint16(mods&modifierMask) | uint16(code))
}

// NewChord combines a first press and a second press. Chording with the
// unbound value is the identity: NewChord(a, 0) == a. Only the first press
// of each argument is used.
func NewChord(first, second Chord) Chord {
	first &= pressMask
	second &= pressMask
	return first | second<<chordShift
}

// Decode returns the modifiers and key code of the first press.
func (c Chord) Decode() (Modifiers, Code) {
	p := uint16(c & pressMask)
	return Modifiers(p) & modifierMask, Code(p & codeMask)
}

// HasChord reports whether c carries a second press.
func (c Chord) HasChord() bool {
	return c>>chordShift != 0
}

// First returns the first press of c as a single-press Chord.
func (c Chord) First() Chord {
	return c & pressMask
}

// Second returns the second press of c as a single-press Chord, or None
// when c is not a chord.
func (c Chord) Second() Chord {
	return c >> chordShift
}

// Modifiers returns the modifiers of the first press.
func (c Chord) Modifiers() Modifiers {
	m, _ := c.Decode()
	return m
}

// Code returns the key code of the first press.
func (c Chord) Code() Code {
	_, code := c.Decode()
	return code
}

// IsBound reports whether c is anything other than the unbound value.
func (c Chord) IsBound() bool {
	return c != None
}
