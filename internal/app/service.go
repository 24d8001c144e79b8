// Package app wires the keybinding engine to its configuration: it builds
// tables from the built-in defaults and the user override file, publishes
// them to a dispatcher and rebuilds when the file changes.
package app

import (
	"context"
	"sync"

	"github.com/dshills/keybind/internal/config"
	"github.com/dshills/keybind/internal/config/keybindings"
	"github.com/dshills/keybind/internal/config/watcher"
	"github.com/dshills/keybind/internal/input/dispatch"
	"github.com/dshills/keybind/internal/input/key"
	"github.com/dshills/keybind/internal/input/keymap"
	"github.com/dshills/keybind/internal/log"
)

// Service owns the current keybinding table and keeps it in sync with the
// override file.
type Service struct {
	cfg      config.Config
	platform key.Platform
	defaults []keymap.Source

	dispatcher *dispatch.Dispatcher

	// reloadMu serializes rebuilds so tables publish in file order.
	reloadMu sync.Mutex

	watchMu  sync.Mutex
	watching bool
}

// Option configures a Service.
type Option func(*Service)

// WithDefaults replaces the built-in default bindings.
func WithDefaults(defaults []keymap.Source) Option {
	return func(s *Service) {
		s.defaults = defaults
	}
}

// New creates a service and builds its first table. A malformed override
// file is an error; a missing one is not.
func New(cfg config.Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:      cfg,
		platform: cfg.ResolvedPlatform(),
		defaults: keymap.DefaultSource(),
	}
	for _, opt := range opts {
		opt(s)
	}

	table, err := s.build()
	if err != nil {
		return nil, err
	}
	s.dispatcher = dispatch.New(table)
	return s, nil
}

// Platform returns the platform tables are built for.
func (s *Service) Platform() key.Platform {
	return s.platform
}

// Config returns the settings the service was created with.
func (s *Service) Config() config.Config {
	return s.cfg
}

// Dispatcher returns the dispatcher publishing the current table.
func (s *Service) Dispatcher() *dispatch.Dispatcher {
	return s.dispatcher
}

// Table returns the current table.
func (s *Service) Table() *keymap.Table {
	return s.dispatcher.Table()
}

// Reload rebuilds the table from the override file and publishes it. On
// error the current table stays in place.
func (s *Service) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	table, err := s.build()
	if err != nil {
		return err
	}
	s.dispatcher.Swap(table)
	return nil
}

// Bind appends an override entry to the file and reloads.
func (s *Service) Bind(src keymap.Source) error {
	path := s.cfg.KeybindingsPath
	if path == "" {
		return NewOperationError("bind", "", ErrNoKeybindingsPath)
	}
	if err := keybindings.Append(path, src); err != nil {
		return NewOperationError("bind", path, err)
	}
	log.Info("keybinding added", "key", src.Key, "command", src.Command, "file", path)
	return s.Reload()
}

// Watch rebuilds the table whenever the override file changes, until ctx
// is done. Reload failures are logged and the previous table is kept.
func (s *Service) Watch(ctx context.Context) error {
	path := s.cfg.KeybindingsPath
	if path == "" {
		return NewOperationError("watch", "", ErrNoKeybindingsPath)
	}

	s.watchMu.Lock()
	if s.watching {
		s.watchMu.Unlock()
		return ErrAlreadyWatching
	}
	s.watching = true
	s.watchMu.Unlock()
	defer func() {
		s.watchMu.Lock()
		s.watching = false
		s.watchMu.Unlock()
	}()

	w, err := watcher.New(watcher.WithDebounce(s.cfg.Debounce))
	if err != nil {
		return NewOperationError("watch", path, err)
	}
	defer func() { log.CloseError("keybindings watcher", w.Close()) }()

	if err := w.Watch(path); err != nil {
		return NewOperationError("watch", path, err)
	}
	w.OnChange(func(ev watcher.Event) {
		log.Debug("keybindings file changed", "path", ev.Path, "op", ev.Op)
		if err := s.Reload(); err != nil {
			log.Error("keybindings reload failed, keeping previous table", "err", err)
		}
	})
	if err := w.Start(ctx); err != nil {
		return NewOperationError("watch", path, err)
	}

	log.Info("watching keybindings file", "path", path)
	<-ctx.Done()
	return nil
}

// build reads the override file and builds a table.
func (s *Service) build() (*keymap.Table, error) {
	var overrides []keymap.Source
	if path := s.cfg.KeybindingsPath; path != "" {
		var err error
		overrides, err = keybindings.Read(path)
		if err != nil {
			return nil, NewOperationError("reload", path, err)
		}
	}

	table := keymap.BuildFromSource(s.defaults, overrides, keymap.WithPlatform(s.platform))
	log.Info("keybindings loaded",
		"generation", table.Generation(),
		"overrides", len(overrides),
		"dropped", table.Dropped(),
		"overridden_defaults", len(table.Diagnostics()))
	return table, nil
}
