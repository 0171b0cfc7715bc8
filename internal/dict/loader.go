package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile merges one dictionary file into d, dispatching on the file
// extension: .toml, .json, or .lua. Entries overwrite earlier definitions
// for the same canonical key.
func (d *Dictionary) LoadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return d.loadTOML(path)
	case ".json":
		return d.loadJSON(path)
	case ".lua":
		return d.LoadLua(path)
	default:
		return fmt.Errorf("dictionary %s: unsupported format %q", path, filepath.Ext(path))
	}
}

// loadTOML reads a flat TOML table of chord = "word" pairs.
func (d *Dictionary) loadTOML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	entries := make(map[string]string)
	if err := toml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decoding dictionary %s: %w", path, err)
	}
	return d.merge(path, entries)
}

// loadJSON reads a flat JSON object of chord: "word" pairs.
func (d *Dictionary) loadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decoding dictionary %s: %w", path, err)
	}
	return d.merge(path, entries)
}

func (d *Dictionary) merge(path string, entries map[string]string) error {
	for letters, word := range entries {
		if _, err := d.Define(letters, word); err != nil {
			return fmt.Errorf("dictionary %s: %w", path, err)
		}
	}
	return nil
}
