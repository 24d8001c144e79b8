package dispatch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/when"
	"github.com/dshills/keybind/internal/log"
)

// Kind classifies the outcome of a press.
type Kind uint8

const (
	// NoMatch means nothing was bound to the press while idle.
	NoMatch Kind = iota
	// ChordEntered means the press began a chord; the next press completes it.
	ChordEntered
	// Matched means a binding fired.
	Matched
	// ChordAbandoned means the press did not complete the pending chord.
	ChordAbandoned
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case ChordEntered:
		return "chord"
	case Matched:
		return "match"
	case ChordAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Outcome is the result of one press.
type Outcome struct {
	Kind Kind

	// Command is set when Kind is Matched.
	Command string

	// Keybinding is the full binding that was pressed, including the
	// pending first press when a chord completed or was abandoned.
	Keybinding key.Chord
}

// Dispatcher resolves presses against the current table.
// It is safe for concurrent use.
type Dispatcher struct {
	table atomic.Pointer[keymap.Table]

	mu      sync.Mutex
	pending key.Chord

	metrics *Metrics
}

// New creates a dispatcher publishing table. A nil table behaves as an
// empty one.
func New(table *keymap.Table) *Dispatcher {
	if table == nil {
		table = keymap.Build(nil, nil)
	}
	d := &Dispatcher{metrics: NewMetrics()}
	d.table.Store(table)
	return d
}

// Table returns the currently published table.
func (d *Dispatcher) Table() *keymap.Table {
	return d.table.Load()
}

// Metrics returns the dispatcher's metrics.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Pending returns the first press of the chord in progress, or key.None.
func (d *Dispatcher) Pending() key.Chord {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Press resolves press in ctx and advances the chord state.
func (d *Dispatcher) Press(ctx when.Context, press key.Chord) Outcome {
	start := time.Now()
	defer func() { d.metrics.RecordPress(time.Since(start)) }()

	table := d.table.Load()

	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.pending
	res, ok := table.Resolve(ctx, pending, press)

	if pending != key.None {
		d.pending = key.None
		kb := key.NewChord(pending, press)
		if !ok {
			d.metrics.RecordChordAbandoned()
			log.Debug("chord abandoned", "key", key.Write(kb, table.Platform()))
			return Outcome{Kind: ChordAbandoned, Keybinding: kb}
		}
		d.metrics.RecordMatch()
		return Outcome{Kind: Matched, Command: res.Command, Keybinding: kb}
	}

	switch {
	case !ok:
		d.metrics.RecordMiss()
		return Outcome{Kind: NoMatch, Keybinding: press}
	case res.IsChord():
		d.pending = res.EnterChord
		d.metrics.RecordChordEntered()
		return Outcome{Kind: ChordEntered, Keybinding: press}
	default:
		d.metrics.RecordMatch()
		return Outcome{Kind: Matched, Command: res.Command, Keybinding: press}
	}
}

// Reset cancels any pending chord. It reports whether one was pending.
func (d *Dispatcher) Reset() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == key.None {
		return false
	}
	d.pending = key.None
	d.metrics.RecordChordAbandoned()
	return true
}

// Swap publishes table as the current table and cancels any pending chord.
// It returns the previous table. A nil table is ignored.
func (d *Dispatcher) Swap(table *keymap.Table) *keymap.Table {
	if table == nil {
		return d.table.Load()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	old := d.table.Swap(table)
	d.pending = key.None
	d.metrics.RecordRebuild()
	log.Debug("keybinding table published",
		"generation", table.Generation(), "previous", old.Generation())
	return old
}
