package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/PixPMusic/xy-midi-controller/internal/preset"
)

// Config holds application settings that outlive a session
type Config struct {
	PresetFile string `json:"preset_file"`
	LastDevice string `json:"last_device"` // output port name
	LastPreset string `json:"last_preset"`

	path string
}

// Default returns the settings used before anything has been saved
func Default() *Config {
	return &Config{
		PresetFile: preset.DefaultPath,
		LastPreset: preset.DefaultName,
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "xy-midi-controller"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, returning defaults if not found
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.PresetFile == "" {
		cfg.PresetFile = preset.DefaultPath
	}

	return cfg, nil
}

// Save writes the config back to where it was loaded from, or to the
// platform config path
func (c *Config) Save() error {
	if c.path != "" {
		return c.SaveTo(c.path)
	}
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
