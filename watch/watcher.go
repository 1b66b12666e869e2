// Package watch keeps a unit registry in sync with catalog files on disk.
//
// A Watcher never mutates a live registry: on change it reloads the catalog
// patterns, builds a replacement registry, and hands it to a swap callback
// (typically unitconv.SetDefault). A failed reload keeps the last good
// registry in place.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/unitconv/catalog"
	"github.com/c360studio/unitconv/registry"
)

const defaultDebounce = 500 * time.Millisecond

// Config configures catalog watching.
type Config struct {
	// Patterns select catalog files, with doublestar ** support, as
	// accepted by catalog.Loader.
	Patterns []string

	// Dirs are the directories to watch. When empty, the static base of
	// each pattern is watched.
	Dirs []string

	// Debounce is how long to wait for further changes before rebuilding.
	// Zero means 500ms.
	Debounce time.Duration
}

// Watcher rebuilds a registry whenever matching catalog files change.
type Watcher struct {
	cfg    Config
	loader *catalog.Loader
	swap   func(*registry.Registry)
	logger *slog.Logger
}

// New creates a watcher. swap receives every successfully rebuilt registry.
// A nil logger falls back to slog.Default.
func New(cfg Config, loader *catalog.Loader, swap func(*registry.Registry), logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if loader == nil {
		loader = catalog.NewLoader(logger)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	return &Watcher{cfg: cfg, loader: loader, swap: swap, logger: logger}
}

// Run loads once, then watches until ctx is cancelled. The initial load
// failing is returned as an error; reload failures during watching are
// logged and the previous registry stays live.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.reload(); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range w.dirs() {
		if err := fsw.Add(dir); err != nil {
			w.logger.Warn("Failed to watch catalog dir",
				slog.String("dir", dir),
				slog.String("error", err.Error()))
		}
	}

	debounce := time.NewTimer(w.cfg.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(ev.Name) {
				continue
			}
			w.logger.Debug("Catalog change",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()))
			if pending && !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(w.cfg.Debounce)
			pending = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", slog.String("error", err.Error()))

		case <-debounce.C:
			pending = false
			if err := w.reload(); err != nil {
				w.logger.Error("Catalog reload failed, keeping previous registry",
					slog.String("error", err.Error()))
			}
		}
	}
}

func (w *Watcher) reload() error {
	r, err := w.loader.Registry(w.cfg.Patterns...)
	if err != nil {
		return err
	}
	w.swap(r)
	w.logger.Info("Catalog loaded", slog.Int("dimensions", len(r.Dimensions())))
	return nil
}

// dirs returns the directories to register with fsnotify.
func (w *Watcher) dirs() []string {
	if len(w.cfg.Dirs) > 0 {
		return w.cfg.Dirs
	}
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range w.cfg.Patterns {
		base, _ := doublestar.SplitPattern(p)
		if !seen[base] {
			seen[base] = true
			dirs = append(dirs, base)
		}
	}
	return dirs
}

// matches reports whether an event path is selected by any pattern.
func (w *Watcher) matches(path string) bool {
	for _, p := range w.cfg.Patterns {
		if ok, err := doublestar.PathMatch(p, path); err == nil && ok {
			return true
		}
	}
	return false
}
