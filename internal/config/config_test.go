package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got := cfg.Timing.StabilityWindow(); got != 600*time.Millisecond {
		t.Errorf("StabilityWindow() = %v, want 600ms", got)
	}
	if got := cfg.Timing.FormationTimeout(); got != 2*time.Second {
		t.Errorf("FormationTimeout() = %v, want 2s", got)
	}
	if got := cfg.Timing.PollInterval(); got != 10*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 10ms", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chordkey.toml")
	content := `
[timing]
stability_window_ms = 400
formation_timeout_ms = 1500

[dictionary]
paths = ["extra.toml"]

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.StabilityWindowMS != 400 {
		t.Errorf("StabilityWindowMS = %d, want 400", cfg.Timing.StabilityWindowMS)
	}
	if cfg.Timing.FormationTimeoutMS != 1500 {
		t.Errorf("FormationTimeoutMS = %d, want 1500", cfg.Timing.FormationTimeoutMS)
	}
	// Unset options keep their defaults.
	if cfg.Timing.PollIntervalMS != DefaultPollIntervalMS {
		t.Errorf("PollIntervalMS = %d, want default %d", cfg.Timing.PollIntervalMS, DefaultPollIntervalMS)
	}
	if len(cfg.Dictionary.Paths) != 1 || cfg.Dictionary.Paths[0] != "extra.toml" {
		t.Errorf("Dictionary.Paths = %v", cfg.Dictionary.Paths)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("timing = nonsense ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed file succeeded")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHORDKEY_STABILITY_WINDOW_MS", "300")
	t.Setenv("CHORDKEY_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.StabilityWindowMS != 300 {
		t.Errorf("StabilityWindowMS = %d, want 300 from env", cfg.Timing.StabilityWindowMS)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" from env", cfg.Log.Level)
	}
}

func TestEnvOverrideMalformed(t *testing.T) {
	t.Setenv("CHORDKEY_POLL_INTERVAL_MS", "fast")
	if _, err := Load(""); err == nil {
		t.Error("Load with malformed env override succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "zero stability window",
			mutate:  func(c *Config) { c.Timing.StabilityWindowMS = 0 },
			wantErr: ErrInvalidTiming,
		},
		{
			name:    "negative formation timeout",
			mutate:  func(c *Config) { c.Timing.FormationTimeoutMS = -1 },
			wantErr: ErrInvalidTiming,
		},
		{
			name:    "formation below stability",
			mutate:  func(c *Config) { c.Timing.FormationTimeoutMS = 100 },
			wantErr: ErrInvalidTiming,
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *Config) { c.Timing.PollIntervalMS = 0 },
			wantErr: ErrInvalidTiming,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
