package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/xy-midi-controller/internal/preset"
)

func TestLoadFromMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, preset.DefaultPath, cfg.PresetFile)
	assert.Equal(t, preset.DefaultName, cfg.LastPreset)
	assert.Empty(t, cfg.LastDevice)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := &Config{PresetFile: "/tmp/p.json", LastDevice: "SH-01A", LastPreset: "Lead"}

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.json", loaded.PresetFile)
	assert.Equal(t, "SH-01A", loaded.LastDevice)
	assert.Equal(t, "Lead", loaded.LastPreset)
}

func TestSaveWritesBackToLoadedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.LastDevice = "Midi Through"
	require.NoError(t, cfg.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Midi Through", loaded.LastDevice)
}

func TestLoadFromFillsPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"preset_file": "", "last_device": "x"}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, preset.DefaultPath, cfg.PresetFile)
	assert.Equal(t, "x", cfg.LastDevice)
	assert.Equal(t, preset.DefaultName, cfg.LastPreset)
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
