// Package keymap builds keybinding tables and resolves key presses against
// them.
//
// # Key Concepts
//
// Item: A parsed binding (Chord, command, when rules) with the weight and
// sequence used to order defaults.
//
// Table: An immutable index of items built once per configuration
// generation. Defaults are registered first, sorted by (weight, command,
// sequence), then overrides in the order given.
//
// Entry: One indexed binding inside a Table bucket.
//
// # Binding Precedence
//
// Within a bucket, later registrations win. Resolution scans a bucket from
// the newest entry back to the oldest and returns the first entry whose
// when rules match the context. An entry whose rules are a superset of a
// later entry's rules can never be reached; Build marks it shadowed so
// reverse lookup no longer reports it.
//
// # Chords
//
// A chord such as "ctrl+k ctrl+s" is indexed twice: under the chord index
// for (ctrl+k, ctrl+s), and as a chord starter under ctrl+k in the primary
// index. Resolving the starter yields EnterChord; the caller then resolves
// the next press with the pending first press.
//
// # Usage
//
//	table := keymap.BuildFromSource(keymap.DefaultSource(), overrides,
//	    keymap.WithPlatform(key.Linux))
//
//	res, ok := table.Resolve(ctx, key.None, press)
//	switch {
//	case !ok:
//	    // no binding
//	case res.IsChord():
//	    pending = res.EnterChord
//	default:
//	    run(res.Command)
//	}
package keymap
