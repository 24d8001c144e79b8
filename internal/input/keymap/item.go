package keymap

import (
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
	"github.com/dshills/keybind/internal/log"
)

// Source is one textual binding as written in a keybindings file.
type Source struct {
	// Key is the keybinding text, e.g. "ctrl+k ctrl+s".
	Key string

	// Mac replaces Key on the Mac platform when set.
	Mac string

	// Command is the command identifier to run.
	Command string

	// When is the context expression, e.g. "editorTextFocus && !inSearch".
	When string

	// Weight orders default bindings; lower weights register first.
	Weight int
}

// KeyFor returns the keybinding text that applies on platform p.
func (s Source) KeyFor(p key.Platform) string {
	if p.IsMac() && s.Mac != "" {
		return s.Mac
	}
	return s.Key
}

// Item is a parsed binding ready for registration in a Table.
type Item struct {
	// Keybinding is the packed key combination. None items are never registered.
	Keybinding key.Chord

	// Command is the command identifier.
	Command string

	// When holds the rules that must all match; empty means always.
	When []when.Rule

	// Weight and Sequence order default items before registration.
	Weight   int
	Sequence int

	// IsDefault is true for built-in bindings.
	IsDefault bool
}

// NewItem creates an item binding kb to command.
func NewItem(kb key.Chord, command string) Item {
	return Item{
		Keybinding: kb,
		Command:    command,
	}
}

// WithWhen sets the when rules for this item.
func (i Item) WithWhen(rules ...when.Rule) Item {
	i.When = rules
	return i
}

// WithWeight sets the weight and sequence for this item.
func (i Item) WithWeight(weight, sequence int) Item {
	i.Weight = weight
	i.Sequence = sequence
	return i
}

// ItemsFromSource parses textual entries into items for platform p. The
// sequence of each item is its position in entries. Entries whose key text
// does not parse are kept with a None keybinding, which Build drops; a
// warning is logged for each.
func ItemsFromSource(entries []Source, p key.Platform, isDefault bool) []Item {
	items := make([]Item, 0, len(entries))
	for i, e := range entries {
		text := e.KeyFor(p)
		kb := key.Read(text, p)
		if kb == key.None {
			log.Warn("ignoring unparseable keybinding", "key", text, "command", e.Command)
		}
		items = append(items, Item{
			Keybinding: kb,
			Command:    e.Command,
			When:       when.Parse(e.When),
			Weight:     e.Weight,
			Sequence:   i,
			IsDefault:  isDefault,
		})
	}
	return items
}
