// Package input groups the keybinding resolution packages.
//
// # Architecture
//
// Key presses flow through several cooperating subpackages:
//
//   - key: Encodes a press, or a two-press chord, as a packed Chord and
//     converts between chords and keybinding text for a platform
//   - when: Context rules ("editorTextFocus && !inSearch") and their
//     evaluation against a Context of named values
//   - keymap: The immutable binding Table built from default and user
//     bindings, with shadowing detection and lookup by command
//   - dispatch: Tracks the pending first press of a chord across calls and
//     swaps tables atomically on reload
//   - termkey: Converts terminal key events into chords
//
// # Chords
//
// A chord such as "ctrl+k ctrl+s" is two presses. The first press resolves
// to "enter chord" and the dispatcher remembers it; the second press is
// then looked up together with the first. A second press that completes no
// chord abandons it, and the press is not replayed.
//
// # Usage
//
//	table := keymap.BuildFromSource(keymap.DefaultSource(), overrides,
//	    keymap.WithPlatform(key.CurrentPlatform()))
//	d := dispatch.New(table)
//
//	out := d.Press(ctx, key.Read("ctrl+k", table.Platform()))
//	// out.Kind == dispatch.ChordEntered
//
//	out = d.Press(ctx, key.Read("ctrl+s", table.Platform()))
//	// out.Kind == dispatch.Matched, out.Command == "workbench.action.openKeybindings"
package input
