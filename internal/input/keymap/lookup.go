package keymap

import (
	"slices"
	"sort"

	"github.com/dshills/keybind/internal/input/key"
)

// LookupKeybinding returns the reachable keybindings of command, most
// recently registered first. Shadowed bindings are left out and duplicates
// are removed. An unknown command yields an empty slice.
func (t *Table) LookupKeybinding(command string) []key.Chord {
	items := t.byCommand[command]
	shadowed := t.shadowed[command]

	result := make([]key.Chord, 0, len(items))
	seen := make(map[key.Chord]struct{}, len(items))
	for _, item := range items {
		if _, ok := shadowed[item.Keybinding]; ok {
			continue
		}
		if _, ok := seen[item.Keybinding]; ok {
			continue
		}
		seen[item.Keybinding] = struct{}{}
		result = append(result, item.Keybinding)
	}
	slices.Reverse(result)
	return result
}

// LookupText returns LookupKeybinding rendered as keybinding text.
func (t *Table) LookupText(command string) []string {
	chords := t.LookupKeybinding(command)
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = key.Write(c, t.platform)
	}
	return out
}

// IsShadowed reports whether kb, bound to command, can never be resolved.
func (t *Table) IsShadowed(command string, kb key.Chord) bool {
	_, ok := t.shadowed[command][kb]
	return ok
}

// Shadowed returns the unreachable keybindings of command in ascending
// order.
func (t *Table) Shadowed(command string) []key.Chord {
	set := t.shadowed[command]
	out := make([]key.Chord, 0, len(set))
	for kb := range set {
		out = append(out, kb)
	}
	slices.Sort(out)
	return out
}

// Commands returns every command with at least one registered binding,
// sorted by name.
func (t *Table) Commands() []string {
	out := make([]string, 0, len(t.byCommand))
	for cmd := range t.byCommand {
		out = append(out, cmd)
	}
	sort.Strings(out)
	return out
}

// Items returns the registered items of command in registration order.
func (t *Table) Items(command string) []Item {
	return slices.Clone(t.byCommand[command])
}
