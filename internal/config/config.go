// Package config loads the engine configuration: the chord timing constants,
// the poll interval, dictionary sources, and logging. Configuration comes
// from an optional TOML file with environment overrides under the CHORDKEY_
// prefix; omitted values fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Default values for the recognized options.
const (
	DefaultStabilityWindowMS  = 600
	DefaultFormationTimeoutMS = 2000
	DefaultPollIntervalMS     = 10
	DefaultSimHoldMS          = 250
	DefaultLogLevel           = "info"
)

// Errors returned by configuration validation.
var (
	// ErrInvalidTiming indicates a non-positive or inconsistent timer.
	ErrInvalidTiming = errors.New("invalid timing")

	// ErrInvalidLogLevel indicates an unrecognized log level.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the full engine configuration.
type Config struct {
	Timing     Timing     `toml:"timing"`
	Dictionary Dictionary `toml:"dictionary"`
	Log        Log        `toml:"log"`
}

// Timing holds the recognized timing options, in milliseconds.
type Timing struct {
	// StabilityWindowMS is the all-up idle time that finishes a chord.
	StabilityWindowMS int `toml:"stability_window_ms"`

	// FormationTimeoutMS is the ceiling on an open chord's lifetime.
	FormationTimeoutMS int `toml:"formation_timeout_ms"`

	// PollIntervalMS is the matrix sampling interval.
	PollIntervalMS int `toml:"poll_interval_ms"`

	// SimHoldMS is the simulator's per-switch hold window.
	SimHoldMS int `toml:"sim_hold_ms"`
}

// Dictionary holds dictionary sources, loaded once at startup.
type Dictionary struct {
	// Paths are extra dictionary files (.toml, .json, .lua) merged over
	// the built-in table in order.
	Paths []string `toml:"paths"`
}

// Log holds logging options.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the configuration with every option at its default.
func Default() Config {
	return Config{
		Timing: Timing{
			StabilityWindowMS:  DefaultStabilityWindowMS,
			FormationTimeoutMS: DefaultFormationTimeoutMS,
			PollIntervalMS:     DefaultPollIntervalMS,
			SimHoldMS:          DefaultSimHoldMS,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	t := c.Timing
	if t.StabilityWindowMS <= 0 {
		return fmt.Errorf("%w: stability_window_ms must be positive, got %d", ErrInvalidTiming, t.StabilityWindowMS)
	}
	if t.FormationTimeoutMS <= 0 {
		return fmt.Errorf("%w: formation_timeout_ms must be positive, got %d", ErrInvalidTiming, t.FormationTimeoutMS)
	}
	if t.FormationTimeoutMS < t.StabilityWindowMS {
		return fmt.Errorf("%w: formation_timeout_ms (%d) below stability_window_ms (%d)",
			ErrInvalidTiming, t.FormationTimeoutMS, t.StabilityWindowMS)
	}
	if t.PollIntervalMS <= 0 {
		return fmt.Errorf("%w: poll_interval_ms must be positive, got %d", ErrInvalidTiming, t.PollIntervalMS)
	}
	if t.SimHoldMS <= 0 {
		return fmt.Errorf("%w: sim_hold_ms must be positive, got %d", ErrInvalidTiming, t.SimHoldMS)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// StabilityWindow returns the stability window as a duration.
func (t Timing) StabilityWindow() time.Duration {
	return time.Duration(t.StabilityWindowMS) * time.Millisecond
}

// FormationTimeout returns the formation timeout as a duration.
func (t Timing) FormationTimeout() time.Duration {
	return time.Duration(t.FormationTimeoutMS) * time.Millisecond
}

// PollInterval returns the poll interval as a duration.
func (t Timing) PollInterval() time.Duration {
	return time.Duration(t.PollIntervalMS) * time.Millisecond
}

// SimHold returns the simulator hold window as a duration.
func (t Timing) SimHold() time.Duration {
	return time.Duration(t.SimHoldMS) * time.Millisecond
}
