package dispatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/input/when"
)

func press(t *testing.T, text string) key.Chord {
	t.Helper()
	c := key.Read(text, key.Linux)
	require.NotEqual(t, key.None, c)
	return c
}

func defaultTable() *keymap.Table {
	return keymap.BuildFromSource(keymap.DefaultSource(), nil, keymap.WithPlatform(key.Linux))
}

func TestPressChordLifecycle(t *testing.T) {
	d := New(defaultTable())
	ctx := when.Context{}

	out := d.Press(ctx, press(t, "ctrl+k"))
	assert.Equal(t, ChordEntered, out.Kind)
	assert.Equal(t, press(t, "ctrl+k"), d.Pending())

	out = d.Press(ctx, press(t, "ctrl+s"))
	assert.Equal(t, Matched, out.Kind)
	assert.Equal(t, "workbench.action.openKeybindings", out.Command)
	assert.Equal(t, press(t, "ctrl+k ctrl+s"), out.Keybinding)
	assert.Equal(t, key.None, d.Pending())
}

func TestPressAbandonsChordOnMiss(t *testing.T) {
	d := New(defaultTable())
	ctx := when.Context{}

	d.Press(ctx, press(t, "ctrl+k"))
	out := d.Press(ctx, press(t, "ctrl+x"))
	assert.Equal(t, ChordAbandoned, out.Kind)
	assert.Empty(t, out.Command)
	assert.Equal(t, key.None, d.Pending())

	// The abandoned press is not replayed; the next press starts fresh.
	out = d.Press(ctx, press(t, "ctrl+p"))
	assert.Equal(t, Matched, out.Kind)
	assert.Equal(t, "workbench.action.quickOpen", out.Command)
}

func TestPressNoMatch(t *testing.T) {
	d := New(defaultTable())
	out := d.Press(when.Context{}, press(t, "ctrl+alt+shift+f9"))
	assert.Equal(t, NoMatch, out.Kind)
	assert.Equal(t, key.None, d.Pending())
}

func TestReset(t *testing.T) {
	d := New(defaultTable())
	assert.False(t, d.Reset())

	d.Press(when.Context{}, press(t, "ctrl+k"))
	assert.True(t, d.Reset())
	assert.Equal(t, key.None, d.Pending())

	out := d.Press(when.Context{}, press(t, "ctrl+s"))
	assert.Equal(t, "workbench.action.files.save", out.Command)
}

func TestSwapClearsPendingAndPublishes(t *testing.T) {
	first := defaultTable()
	d := New(first)
	d.Press(when.Context{}, press(t, "ctrl+k"))

	next := keymap.BuildFromSource(keymap.DefaultSource(),
		[]keymap.Source{{Key: "ctrl+s", Command: "myFormatAndSave"}},
		keymap.WithPlatform(key.Linux))

	old := d.Swap(next)
	assert.Same(t, first, old)
	assert.Same(t, next, d.Table())
	assert.Equal(t, key.None, d.Pending())

	out := d.Press(when.Context{}, press(t, "ctrl+s"))
	assert.Equal(t, "myFormatAndSave", out.Command)

	assert.Same(t, next, d.Swap(nil))
}

func TestNewWithNilTable(t *testing.T) {
	d := New(nil)
	require.NotNil(t, d.Table())
	assert.Equal(t, NoMatch, d.Press(nil, press(t, "ctrl+s")).Kind)
}

func TestMetricsCounts(t *testing.T) {
	d := New(defaultTable())
	ctx := when.Context{}

	d.Press(ctx, press(t, "ctrl+p"))
	d.Press(ctx, press(t, "ctrl+k"))
	d.Press(ctx, press(t, "ctrl+x"))
	d.Press(ctx, press(t, "ctrl+alt+f9"))
	d.Swap(defaultTable())

	snap := d.Metrics().Snapshot()
	assert.Equal(t, uint64(4), snap.PressesTotal)
	assert.Equal(t, uint64(1), snap.MatchesTotal)
	assert.Equal(t, uint64(1), snap.MissesTotal)
	assert.Equal(t, uint64(1), snap.ChordsEntered)
	assert.Equal(t, uint64(1), snap.ChordsAbandoned)
	assert.Equal(t, uint64(1), snap.Rebuilds)

	d.Metrics().Reset()
	assert.Zero(t, d.Metrics().Snapshot().PressesTotal)
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics()
	m.SetEnabled(false)
	m.RecordMatch()
	m.RecordPress(5)
	assert.False(t, m.IsEnabled())
	assert.Zero(t, m.Snapshot().MatchesTotal)
	assert.Zero(t, m.Snapshot().PressesTotal)
}

func TestConcurrentPressAndSwap(t *testing.T) {
	d := New(defaultTable())
	ctx := when.Context{"editorTextFocus": true}
	ctrlK := press(t, "ctrl+k")
	ctrlS := press(t, "ctrl+s")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				d.Press(ctx, ctrlK)
				d.Press(ctx, ctrlS)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			d.Swap(defaultTable())
		}
	}()
	wg.Wait()

	assert.Equal(t, uint64(1600), d.Metrics().Snapshot().PressesTotal)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "match", Matched.String())
	assert.Equal(t, "chord", ChordEntered.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
