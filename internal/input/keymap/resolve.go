package keymap

import (
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
)

// Result is the outcome of a successful Resolve.
//
// Exactly one field is set: EnterChord when the press starts a chord and
// the caller should wait for the next press, Command when a binding fired.
type Result struct {
	EnterChord key.Chord
	Command    string
}

// IsChord reports whether the result asks the caller to await a chord
// continuation.
func (r Result) IsChord() bool {
	return r.EnterChord != key.None
}

// Resolve finds the binding for press given the pending first press of a
// chord (key.None when idle) and a context snapshot. It returns false when
// nothing matches. A miss while a chord is pending does not fall back to
// the primary index; the caller abandons the chord.
//
// Resolve is a pure function of its inputs and does not allocate.
func (t *Table) Resolve(ctx when.Context, pending, press key.Chord) (Result, bool) {
	var bucket []Entry
	if pending != key.None {
		bucket = t.chords[pending][press]
	} else {
		bucket = t.primary[press]
	}

	for i := len(bucket) - 1; i >= 0; i-- {
		candidate := &bucket[i]
		if !when.MatchesAll(ctx, candidate.Context) {
			continue
		}
		if pending == key.None && candidate.IsChordStarter() {
			return Result{EnterChord: press}, true
		}
		return Result{Command: candidate.Command}, true
	}
	return Result{}, false
}
