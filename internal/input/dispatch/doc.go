// Package dispatch drives key presses through a keybinding table.
//
// A Dispatcher owns the one piece of mutable resolution state, the pending
// first press of a chord, and the currently published table. Tables are
// swapped atomically on rebuild; a swap abandons any pending chord because
// the new table may not contain it.
//
//	d := dispatch.New(table)
//	out := d.Press(ctx, chord)
//	switch out.Kind {
//	case dispatch.Matched:
//		run(out.Command)
//	case dispatch.ChordEntered:
//		showStatus("waiting for second key")
//	}
package dispatch
