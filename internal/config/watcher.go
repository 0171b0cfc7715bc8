package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the write bursts editors produce when saving.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the timing options when the config file changes and
// delivers them on Updates. Only timing is hot-reloaded: dictionary sources
// are fixed at startup and a log-level change needs a restart.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan Timing
	logger  *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher watches the config file at path. The file's directory is
// watched so the common save-by-rename pattern is seen.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    path,
		fsw:     fsw,
		updates: make(chan Timing, 1),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers validated timing values after config-file writes.
// The channel holds one pending update; a newer one replaces it.
func (w *Watcher) Updates() <-chan Timing {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			debounceC = debounce.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		case <-debounceC:
			debounceC = nil
			w.reload()
		}
	}
}

// reload parses the file and publishes its timing if valid. Invalid configs
// are logged and skipped; the engine keeps its current timing.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload skipped", "path", w.path, "error", err)
		return
	}

	// Replace any pending update with the newest one.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg.Timing:
		w.logger.Info("config timing reloaded",
			"stability_window_ms", cfg.Timing.StabilityWindowMS,
			"formation_timeout_ms", cfg.Timing.FormationTimeoutMS,
		)
	case <-w.done:
	}
}
