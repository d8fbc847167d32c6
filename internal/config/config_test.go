package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HistoryBackend != "text" {
		t.Errorf("Expected text backend, got %q", cfg.HistoryBackend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info log level, got %q", cfg.LogLevel)
	}
	if cfg.HistoryPath == "" {
		t.Error("Expected non-empty history path")
	}
	if cfg.LogPath == "" {
		t.Error("Expected non-empty log path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HistoryBackend != "text" {
		t.Errorf("Expected defaults for missing file, got backend %q", cfg.HistoryBackend)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"history_backend": "sqlite", "history_path": "/tmp/calc.db"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HistoryBackend != "sqlite" {
		t.Errorf("Expected sqlite backend, got %q", cfg.HistoryBackend)
	}
	if cfg.HistoryPath != "/tmp/calc.db" {
		t.Errorf("Expected overridden history path, got %q", cfg.HistoryPath)
	}
	// Untouched fields keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.HistoryBackend = "sqlite"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.HistoryBackend != "sqlite" {
		t.Errorf("Expected sqlite backend after reload, got %q", loaded.HistoryBackend)
	}
}
