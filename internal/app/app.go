// Package app wires the engine together and owns the polling loop.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dshills/chordkey/internal/config"
	"github.com/dshills/chordkey/internal/decode"
	"github.com/dshills/chordkey/internal/dict"
	"github.com/dshills/chordkey/internal/emit"
	"github.com/dshills/chordkey/internal/event"
	"github.com/dshills/chordkey/internal/hw"
	"github.com/dshills/chordkey/internal/input"
	"github.com/dshills/chordkey/internal/input/chord"
	"github.com/dshills/chordkey/internal/input/key"
)

// ErrQuit signals a normal user-requested exit from Run.
var ErrQuit = errors.New("quit")

// Options configure the application.
type Options struct {
	// ConfigPath is the TOML config file; empty uses defaults plus
	// environment overrides.
	ConfigPath string

	// DictPaths are extra dictionary files merged after the config's.
	DictPaths []string

	// ReplayPath runs a scripted replay instead of the simulator.
	ReplayPath string

	// Debug forces debug logging.
	Debug bool
}

// App is the assembled engine.
type App struct {
	cfg     config.Config
	logger  *slog.Logger
	handler *input.Handler
	matrix  hw.Matrix
	watcher *config.Watcher
	bus     *event.Bus

	quit         chan struct{}
	shutdownOnce sync.Once
}

// New loads configuration, builds the dictionary, and wires the pipeline.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log.Level, opts.Debug)

	d := dict.Defaults()
	paths := append(append([]string{}, cfg.Dictionary.Paths...), opts.DictPaths...)
	for _, p := range paths {
		if err := d.LoadFile(p); err != nil {
			return nil, err
		}
	}
	logger.Info("dictionary loaded", "entries", d.Size(), "overwritten", d.Duplicates())

	layout := key.DefaultLayout()
	bus := event.NewBus()

	a := &App{
		cfg:    cfg,
		logger: logger,
		bus:    bus,
		quit:   make(chan struct{}),
	}

	var emitter emit.Emitter
	if opts.ReplayPath != "" {
		frames, err := hw.LoadScript(opts.ReplayPath, cfg.Timing.PollInterval())
		if err != nil {
			return nil, err
		}
		a.matrix = hw.NewReplay(frames)
		emitter = emit.NewWriter(os.Stdout)
	} else {
		sim, err := hw.NewSim(cfg.Timing.SimHold())
		if err != nil {
			return nil, err
		}
		a.matrix = sim
		emitter = sim
		bus.SubscribeAll(sim.Notify)
	}

	timing := chord.Timing{
		StabilityWindow:  cfg.Timing.StabilityWindow(),
		FormationTimeout: cfg.Timing.FormationTimeout(),
	}
	a.handler = input.NewHandler(layout, decode.New(layout, d), emitter, bus, timing, logger)

	bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event", "topic", string(e.Topic), "id", e.ID.String())
	})

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, logger)
		if err != nil {
			// Live timing reload is a convenience; run without it.
			logger.Warn("config watcher disabled", "error", err)
		} else {
			a.watcher = w
		}
	}

	logger.Info("chordkey ready",
		"stability_window", timing.StabilityWindow,
		"formation_timeout", timing.FormationTimeout,
		"poll_interval", cfg.Timing.PollInterval(),
	)
	return a, nil
}

// Run drives the polling loop until the matrix closes, Shutdown is called,
// or a collaborator fails. A user-requested exit returns ErrQuit.
func (a *App) Run() error {
	ticker := time.NewTicker(a.cfg.Timing.PollInterval())
	defer ticker.Stop()

	var updates <-chan config.Timing
	if a.watcher != nil {
		updates = a.watcher.Updates()
	}

	for {
		select {
		case <-a.quit:
			return ErrQuit

		case timing := <-updates:
			a.handler.SetTiming(chord.Timing{
				StabilityWindow:  timing.StabilityWindow(),
				FormationTimeout: timing.FormationTimeout(),
			})

		case now := <-ticker.C:
			state, err := a.matrix.Scan()
			if err != nil {
				if errors.Is(err, hw.ErrClosed) {
					return ErrQuit
				}
				return fmt.Errorf("matrix scan: %w", err)
			}
			if err := a.handler.Tick(now, state); err != nil {
				// Emitter faults are the supervisor's problem; the
				// state machine itself cannot fail.
				return fmt.Errorf("keystroke output: %w", err)
			}
		}
	}
}

// Shutdown releases the matrix and watcher. Safe to call more than once and
// from any goroutine.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		close(a.quit)
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.matrix != nil {
			_ = a.matrix.Close()
		}
	})
}

// newLogger builds the process logger. Debug forces the debug level.
func newLogger(level string, debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
