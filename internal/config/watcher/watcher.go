// Package watcher reports changes to configuration files.
//
// The watcher subscribes to the parent directory of each watched file
// through fsnotify, so files replaced by rename (as most editors save) are
// still seen. Bursts of changes are coalesced and delivered once the file
// has been quiet for the debounce period.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keybind/internal/log"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// Watcher monitors files for changes.
type Watcher struct {
	mu sync.RWMutex

	fsw *fsnotify.Watcher

	// Watched files, and the directories subscribed for them
	files map[string]struct{}
	dirs  map[string]int

	handlers []Handler

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	closed  bool

	// Debounce settings
	debounce     time.Duration
	pendingMu    sync.Mutex
	pendingFiles map[string]pendingEvent
}

// pendingEvent stores a pending event with its operation for debouncing.
type pendingEvent struct {
	Op   Operation
	Time time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes. Zero delivers
// every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New creates a new file watcher.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:          fsw,
		files:        make(map[string]struct{}),
		dirs:         make(map[string]int),
		debounce:     100 * time.Millisecond,
		pendingFiles: make(map[string]pendingEvent),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch adds a file to the watch list. The file need not exist yet, but
// its directory must.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if _, ok := w.files[absPath]; ok {
		return nil
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[absPath] = struct{}{}
	return nil
}

// Unwatch removes a file from the watch list.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[absPath]; !ok {
		return nil
	}
	delete(w.files, absPath)

	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if !w.closed {
			return w.fsw.Remove(dir)
		}
	}
	return nil
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins delivering events until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.eventLoop(ctx)

	if w.debounce > 0 {
		w.wg.Add(1)
		go w.debounceLoop(ctx)
	}
	return nil
}

// Stop stops delivering events and waits for the loops to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fsw.Close()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// WatchedFiles returns the list of watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// eventLoop converts fsnotify events for watched files.
func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			event, ok := w.convert(fsEvent)
			if !ok {
				continue
			}
			if w.debounce > 0 {
				w.queueEvent(event)
			} else {
				w.emitEvent(event)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("file watcher error", "err", err)
		}
	}
}

// convert maps an fsnotify event onto a watched file event.
func (w *Watcher) convert(fsEvent fsnotify.Event) (Event, bool) {
	path := filepath.Clean(fsEvent.Name)

	w.mu.RLock()
	_, watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return Event{}, false
	}

	var op Operation
	switch {
	case fsEvent.Has(fsnotify.Remove):
		op = OpRemove
	case fsEvent.Has(fsnotify.Rename):
		op = OpRename
	case fsEvent.Has(fsnotify.Create):
		op = OpCreate
	case fsEvent.Has(fsnotify.Write):
		op = OpWrite
	default:
		return Event{}, false
	}

	return Event{Path: path, Op: op, Time: time.Now()}, true
}

// queueEvent queues an event for debounced delivery.
// It coalesces events:
// - create + write => create
// - write + write => write (latest time)
// - any + remove => remove
// - remove + create => write, since the file was replaced
func (w *Watcher) queueEvent(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	existing, exists := w.pendingFiles[event.Path]
	if !exists {
		w.pendingFiles[event.Path] = pendingEvent{Op: event.Op, Time: event.Time}
		return
	}

	op := event.Op
	switch event.Op {
	case OpCreate:
		if existing.Op == OpRemove || existing.Op == OpRename {
			op = OpWrite
		}
	case OpWrite:
		op = existing.Op
		if existing.Op == OpRemove || existing.Op == OpRename {
			op = OpWrite
		}
	}
	w.pendingFiles[event.Path] = pendingEvent{Op: op, Time: event.Time}
}

// debounceLoop processes debounced events.
func (w *Watcher) debounceLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(max(w.debounce/2, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPendingEvents(time.Now())
		}
	}
}

// processPendingEvents emits events that have been stable since before
// now minus the debounce period.
func (w *Watcher) processPendingEvents(now time.Time) {
	w.pendingMu.Lock()
	stableThreshold := now.Add(-w.debounce)

	var toEmit []Event
	for path, pending := range w.pendingFiles {
		if pending.Time.Before(stableThreshold) {
			toEmit = append(toEmit, Event{
				Path: path,
				Op:   pending.Op,
				Time: pending.Time,
			})
			delete(w.pendingFiles, path)
		}
	}
	w.pendingMu.Unlock()

	for _, event := range toEmit {
		w.emitEvent(event)
	}
}

// emitEvent calls all handlers with the event.
func (w *Watcher) emitEvent(event Event) {
	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, handler := range handlers {
		w.safeCallHandler(handler, event)
	}
}

// safeCallHandler calls a handler with panic recovery.
func (w *Watcher) safeCallHandler(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("file watcher handler panicked", "path", event.Path, "panic", r)
		}
	}()
	handler(event)
}
