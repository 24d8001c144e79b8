package keymap

import (
	"cmp"
	"fmt"
	"slices"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/when"
	"github.com/dshills/keybind/internal/log"
)

// Entry is one indexed binding in a Table bucket.
type Entry struct {
	// Context is the normalized when rules.
	Context []when.Rule

	// Keybinding is the full binding. In the primary index a chord value
	// marks a chord starter.
	Keybinding key.Chord

	// Command is the command identifier.
	Command string

	isDefault bool
}

// IsChordStarter reports whether e, found in the primary index, begins a
// chord rather than resolving to its command.
func (e Entry) IsChordStarter() bool {
	return e.Keybinding.HasChord()
}

// Diagnostic reports a default binding made unreachable by a later one.
type Diagnostic struct {
	// Keybinding is the shadowed default binding.
	Keybinding key.Chord

	// Shadowed is the command of the default that can no longer fire.
	Shadowed string

	// By is the command of the later binding that wins instead.
	By string
}

// Format describes the diagnostic in keybinding text for platform p.
func (d Diagnostic) Format(p key.Platform) string {
	return fmt.Sprintf("%s: default binding for %q is overridden by %q",
		key.Write(d.Keybinding, p), d.Shadowed, d.By)
}

// Table is an immutable keybinding index. Build a new Table whenever the
// binding list changes.
type Table struct {
	platform   key.Platform
	generation string
	logger     *charmlog.Logger

	primary   map[key.Chord][]Entry
	chords    map[key.Chord]map[key.Chord][]Entry
	byCommand map[string][]Item
	shadowed  map[string]map[key.Chord]struct{}

	// defaults holds registered default items in registration order.
	defaults    []Item
	diagnostics []Diagnostic
	dropped     int
}

// Option configures Build.
type Option func(*Table)

// WithPlatform sets the platform used to render keybinding text.
func WithPlatform(p key.Platform) Option {
	return func(t *Table) {
		t.platform = p
	}
}

// WithLogger sets the logger that receives build diagnostics.
func WithLogger(l *charmlog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// Build creates a Table from default items followed by override items.
// Defaults are sorted by (Weight, Command, Sequence) before registration;
// overrides are registered in the order given. Items with a None
// keybinding or an empty command are dropped.
func Build(defaults, overrides []Item, opts ...Option) *Table {
	t := &Table{
		platform:  key.CurrentPlatform(),
		logger:    log.Logger,
		primary:   make(map[key.Chord][]Entry),
		chords:    make(map[key.Chord]map[key.Chord][]Entry),
		byCommand: make(map[string][]Item),
		shadowed:  make(map[string]map[key.Chord]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.generation = uuid.NewString()
	t.logger = t.logger.With("generation", t.generation)

	sorted := slices.Clone(defaults)
	slices.SortStableFunc(sorted, compareDefaults)

	seen := make(map[Diagnostic]struct{})
	for _, item := range sorted {
		item.IsDefault = true
		t.register(item, seen)
	}
	for _, item := range overrides {
		item.IsDefault = false
		t.register(item, seen)
	}

	t.logger.Debug("keybinding table built",
		"bindings", len(t.defaults), "commands", len(t.byCommand),
		"dropped", t.dropped, "diagnostics", len(t.diagnostics))
	return t
}

// BuildFromSource parses textual defaults and overrides and builds a Table.
// The platform option, if any, also selects how the text is read.
func BuildFromSource(defaults, overrides []Source, opts ...Option) *Table {
	probe := &Table{platform: key.CurrentPlatform()}
	for _, opt := range opts {
		opt(probe)
	}
	return Build(
		ItemsFromSource(defaults, probe.platform, true),
		ItemsFromSource(overrides, probe.platform, false),
		opts...,
	)
}

func compareDefaults(a, b Item) int {
	if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Command, b.Command); c != 0 {
		return c
	}
	return cmp.Compare(a.Sequence, b.Sequence)
}

// register indexes one item, marking any earlier entries it shadows.
func (t *Table) register(item Item, seen map[Diagnostic]struct{}) {
	if item.Keybinding == key.None || item.Command == "" {
		t.dropped++
		return
	}

	entry := Entry{
		Context:    when.NormalizeAll(item.When),
		Keybinding: item.Keybinding,
		Command:    item.Command,
		isDefault:  item.IsDefault,
	}

	first := item.Keybinding.First()
	if item.Keybinding.HasChord() {
		second := item.Keybinding.Second()
		byFirst, ok := t.chords[first]
		if !ok {
			byFirst = make(map[key.Chord][]Entry)
			t.chords[first] = byFirst
		}
		byFirst[second] = append(byFirst[second], entry)
	}

	// Single presses resolve here; chords leave their starter here. Every
	// chord entry also lives in this bucket, so one scan covers both.
	t.checkConflicts(t.primary[first], entry, seen)
	t.primary[first] = append(t.primary[first], entry)

	t.byCommand[item.Command] = append(t.byCommand[item.Command], item)
	if item.IsDefault {
		t.defaults = append(t.defaults, item)
	}
}

// checkConflicts walks bucket from the newest entry back and marks every
// entry that the incoming entry will always be found before.
func (t *Table) checkConflicts(bucket []Entry, incoming Entry, seen map[Diagnostic]struct{}) {
	for i := len(bucket) - 1; i >= 0; i-- {
		existing := bucket[i]
		if existing.Command == incoming.Command {
			continue
		}
		if existing.Keybinding.HasChord() && incoming.Keybinding.HasChord() &&
			existing.Keybinding != incoming.Keybinding {
			// Same first press, different chords: no conflict.
			continue
		}
		if !when.EntirelyIncludes(existing.Context, incoming.Context) {
			continue
		}

		t.markShadowed(existing.Command, existing.Keybinding)

		if existing.isDefault {
			d := Diagnostic{Keybinding: existing.Keybinding, Shadowed: existing.Command, By: incoming.Command}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			t.diagnostics = append(t.diagnostics, d)
			t.logger.Debug("default keybinding overridden",
				"key", key.Write(d.Keybinding, t.platform), "command", d.Shadowed, "by", d.By)
		}
	}
}

func (t *Table) markShadowed(command string, kb key.Chord) {
	set, ok := t.shadowed[command]
	if !ok {
		set = make(map[key.Chord]struct{})
		t.shadowed[command] = set
	}
	set[kb] = struct{}{}
}

// Platform returns the platform the table renders keybinding text for.
func (t *Table) Platform() key.Platform {
	return t.platform
}

// Generation returns the unique id assigned to this table when it was built.
func (t *Table) Generation() string {
	return t.generation
}

// Diagnostics returns the overridden-default reports gathered during Build,
// in the order they were found.
func (t *Table) Diagnostics() []Diagnostic {
	return slices.Clone(t.diagnostics)
}

// Dropped returns how many items were not registered because their
// keybinding or command was empty.
func (t *Table) Dropped() int {
	return t.dropped
}

// Entries returns a copy of the primary bucket for press, oldest first.
func (t *Table) Entries(press key.Chord) []Entry {
	return slices.Clone(t.primary[press])
}

// ChordEntries returns a copy of the chord bucket for (first, second),
// oldest first.
func (t *Table) ChordEntries(first, second key.Chord) []Entry {
	return slices.Clone(t.chords[first][second])
}
