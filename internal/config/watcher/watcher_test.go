package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestNew_WithOptions(t *testing.T) {
	w := newWatcher(t)
	if w.debounce != 100*time.Millisecond {
		t.Errorf("default debounce = %v, want 100ms", w.debounce)
	}

	w = newWatcher(t, WithDebounce(50*time.Millisecond))
	if w.debounce != 50*time.Millisecond {
		t.Errorf("debounce = %v, want 50ms", w.debounce)
	}

	w = newWatcher(t, WithDebounce(-1))
	if w.debounce != 100*time.Millisecond {
		t.Errorf("negative debounce should be ignored, got %v", w.debounce)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_WatchAndUnwatch(t *testing.T) {
	dir := t.TempDir()
	w := newWatcher(t)

	existing := filepath.Join(dir, "keybindings.json")
	if err := os.WriteFile(existing, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(existing); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Watch(filepath.Join(dir, "later.json")); err != nil {
		t.Fatalf("Watch(missing file) error = %v", err)
	}
	if err := w.Watch(existing); err != nil {
		t.Fatalf("second Watch() error = %v", err)
	}
	if got := len(w.WatchedFiles()); got != 2 {
		t.Errorf("WatchedFiles() = %d files, want 2", got)
	}
	if got := w.dirs[dir]; got != 2 {
		t.Errorf("dir refcount = %d, want 2", got)
	}

	if err := w.Unwatch(existing); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}
	if err := w.Unwatch(filepath.Join(dir, "later.json")); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}
	if len(w.WatchedFiles()) != 0 || len(w.dirs) != 0 {
		t.Errorf("expected nothing watched, got files=%v dirs=%v", w.WatchedFiles(), w.dirs)
	}
}

func TestWatcher_WatchMissingDirectory(t *testing.T) {
	w := newWatcher(t)
	if err := w.Watch(filepath.Join(t.TempDir(), "nope", "keybindings.json")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWatcher_DeliversWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t, WithDebounce(0))
	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })

	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !w.IsRunning() {
		t.Error("IsRunning() = false after Start")
	}

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`[{"key":"f1","command":"x"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, events)
	if ev.Path != path {
		t.Errorf("event path = %q, want %q", ev.Path, path)
	}

	w.Stop()
	if w.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.json")

	w := newWatcher(t, WithDebounce(50*time.Millisecond))
	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })

	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('0' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ev := waitEvent(t, events)
	if ev.Op != OpCreate {
		t.Errorf("coalesced op = %v, want create", ev.Op)
	}

	select {
	case extra := <-events:
		t.Errorf("unexpected extra event %+v", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestQueueEventCoalesces(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		ops  []Operation
		want Operation
	}{
		{"create then write", []Operation{OpCreate, OpWrite}, OpCreate},
		{"write then write", []Operation{OpWrite, OpWrite}, OpWrite},
		{"write then remove", []Operation{OpWrite, OpRemove}, OpRemove},
		{"rename then create", []Operation{OpRename, OpCreate}, OpWrite},
		{"remove then write", []Operation{OpRemove, OpWrite}, OpWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Watcher{debounce: time.Second, pendingFiles: make(map[string]pendingEvent)}
			for i, op := range tt.ops {
				w.queueEvent(Event{Path: "/k.json", Op: op, Time: now.Add(time.Duration(i) * time.Millisecond)})
			}
			if got := w.pendingFiles["/k.json"].Op; got != tt.want {
				t.Errorf("op = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProcessPendingEventsWaitsForQuiet(t *testing.T) {
	w := &Watcher{debounce: 100 * time.Millisecond, pendingFiles: make(map[string]pendingEvent)}
	var got []Event
	w.OnChange(func(ev Event) { got = append(got, ev) })

	base := time.Now()
	w.queueEvent(Event{Path: "/k.json", Op: OpWrite, Time: base})

	w.processPendingEvents(base.Add(50 * time.Millisecond))
	if len(got) != 0 {
		t.Fatalf("emitted too early: %v", got)
	}

	w.processPendingEvents(base.Add(150 * time.Millisecond))
	if len(got) != 1 || got[0].Op != OpWrite {
		t.Fatalf("events = %v, want one write", got)
	}
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	w := &Watcher{pendingFiles: make(map[string]pendingEvent)}
	called := false
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(Event) { called = true })

	w.emitEvent(Event{Path: "/k.json"})
	if !called {
		t.Error("second handler not called after first panicked")
	}
}

func TestClosedWatcher(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "k.json")); err != ErrWatcherClosed {
		t.Errorf("Watch() error = %v, want ErrWatcherClosed", err)
	}
	if err := w.Start(context.Background()); err != ErrWatcherClosed {
		t.Errorf("Start() error = %v, want ErrWatcherClosed", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
