// Package preset stores named CC/channel presets in a JSON file
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPath is the preset file used when none is configured
const DefaultPath = "xy_midi_presets.json"

// DefaultName is the built-in preset that can never be deleted
const DefaultName = "SH01A filter"

var (
	ErrEmptyName   = errors.New("preset name cannot be empty")
	ErrReserved    = errors.New("the default preset cannot be deleted")
	ErrNoSelection = errors.New("no preset selected")
	ErrNotFound    = errors.New("preset not found")
)

// Preset is one saved set of controller numbers and a channel (1-16)
type Preset struct {
	XCC     int `json:"x_cc"`
	YCC     int `json:"y_cc"`
	Channel int `json:"channel"`
}

// Default returns the values of the built-in preset
func Default() Preset {
	return Preset{XCC: 74, YCC: 71, Channel: 1}
}

// Validate reports whether the preset can be applied
func (p Preset) Validate() error {
	if p.XCC < 0 || p.XCC > 127 || p.YCC < 0 || p.YCC > 127 {
		return fmt.Errorf("CC values must be between 0 and 127 (got %d, %d)", p.XCC, p.YCC)
	}
	if p.Channel < 1 || p.Channel > 16 {
		return fmt.Errorf("channel must be between 1 and 16 (got %d)", p.Channel)
	}
	return nil
}

// Store is the in-memory preset collection backed by a file
type Store struct {
	path    string
	presets map[string]Preset
}

// Load reads the store at path. A missing file is created with only the
// default preset; an unreadable one falls back to the default in memory.
func Load(path string) *Store {
	s := &Store{path: path, presets: defaults()}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.persist(); err != nil {
			log.Printf("Failed to create preset file: %v", err)
		}
		return s
	}
	if err != nil {
		log.Printf("Failed to read presets, using defaults: %v", err)
		return s
	}

	var loaded map[string]Preset
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("Failed to parse presets, using defaults: %v", err)
		return s
	}
	if loaded == nil {
		loaded = map[string]Preset{}
	}
	if _, ok := loaded[DefaultName]; !ok {
		loaded[DefaultName] = Default()
	}
	s.presets = loaded
	return s
}

func defaults() map[string]Preset {
	return map[string]Preset{DefaultName: Default()}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Get returns the preset stored under name
func (s *Store) Get(name string) (Preset, bool) {
	p, ok := s.presets[name]
	return p, ok
}

// Names returns the default preset first, then the rest alphabetically
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultName}, names...)
}

// Save inserts or overwrites a preset and rewrites the file. A write
// failure is returned but the in-memory change is kept.
func (s *Store) Save(name string, xCC, yCC, channel int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.presets[name] = Preset{XCC: xCC, YCC: yCC, Channel: channel}
	return s.persist()
}

// Delete removes a preset and rewrites the file
func (s *Store) Delete(name string) error {
	switch {
	case name == "":
		return ErrNoSelection
	case name == DefaultName:
		return ErrReserved
	}
	if _, ok := s.presets[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	delete(s.presets, name)
	return s.persist()
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.presets, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to save presets: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}
	return nil
}
