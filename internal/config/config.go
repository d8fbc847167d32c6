// Package config loads and persists the application configuration, a
// single JSON file under the user's config directory. Unset fields
// fall back to defaults, so a partial (or missing) file is fine.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config represents application configuration.
type Config struct {
	// HistoryPath is where the calculation log lives. For the text
	// backend this is a plain text file; for sqlite a database file.
	HistoryPath string `json:"history_path"`
	// HistoryBackend selects the persistence backend: "text" or
	// "sqlite".
	HistoryBackend string `json:"history_backend"`
	LogLevel       string `json:"log_level"` // debug, info, warn, error, none
	LogPath        string `json:"-"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "linux":
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, "rechner")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "rechner")
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, "rechner")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", "rechner")
	default:
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "rechner")
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "linux":
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, "rechner")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", "rechner")
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, "rechner")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", "rechner")
	default:
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "rechner")
	}
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	stateDir := defaultStateDir()

	return &Config{
		HistoryPath:    filepath.Join(stateDir, "history.txt"),
		HistoryBackend: "text",
		LogLevel:       "info",
		LogPath:        filepath.Join(stateDir, "rechner.log"),
	}
}

// Load loads configuration from file. A missing file yields the
// defaults; fields present in the file override them.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	stateDir := defaultStateDir()
	if config.HistoryPath == "" {
		config.HistoryPath = filepath.Join(stateDir, "history.txt")
	}
	if config.HistoryBackend == "" {
		config.HistoryBackend = "text"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(stateDir, "rechner.log")
	}

	return config, nil
}

// Save saves configuration to file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path.
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
