package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the environment variable prefix for overrides.
const envPrefix = "CHORDKEY_"

// Load builds the configuration: defaults, then the TOML file at path if it
// exists, then environment overrides. An empty path skips the file layer.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file: defaults plus environment.
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("decoding config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays CHORDKEY_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	ints := map[string]*int{
		"STABILITY_WINDOW_MS":  &cfg.Timing.StabilityWindowMS,
		"FORMATION_TIMEOUT_MS": &cfg.Timing.FormationTimeoutMS,
		"POLL_INTERVAL_MS":     &cfg.Timing.PollIntervalMS,
		"SIM_HOLD_MS":          &cfg.Timing.SimHoldMS,
	}
	for name, dst := range ints {
		raw, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = v
	}

	if raw, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(raw))
	}
	if raw, ok := os.LookupEnv(envPrefix + "DICT_PATHS"); ok {
		cfg.Dictionary.Paths = nil
		for _, p := range strings.Split(raw, string(os.PathListSeparator)) {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Dictionary.Paths = append(cfg.Dictionary.Paths, p)
			}
		}
	}
	return nil
}
