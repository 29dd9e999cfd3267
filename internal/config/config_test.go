package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testConfig() *Config {
	return &Config{
		Items: []Item{
			{ID: "home", Label: "Home", Href: "/"},
			{ID: "reports", Label: "Reports", Href: "/reports", Tags: []string{"analytics"}},
		},
		Settings: &Settings{
			Backend:           BackendFile,
			MaxVisibleItems:   5,
			WeightDecayFactor: 0.95,
		},
	}
}

func TestSaveAndLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := testConfig()
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if len(loaded.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded.Items))
	}
	if loaded.Items[0].ID != "home" || loaded.Items[1].ID != "reports" {
		t.Errorf("catalog order not preserved: %+v", loaded.Items)
	}
	if loaded.Settings.MaxVisibleItems != 5 {
		t.Errorf("expected maxVisibleItems 5, got %d", loaded.Settings.MaxVisibleItems)
	}
	if loaded.Settings.WeightDecayFactor != 0.95 {
		t.Errorf("expected weightDecayFactor 0.95, got %g", loaded.Settings.WeightDecayFactor)
	}
}

func TestLoadFrom_NotFound(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))

	var notFound *ConfigNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ConfigNotFoundError, got %v", err)
	}
}

func TestLoadFrom_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)

	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidConfigError, got %v", err)
	}
}

func TestLoadFrom_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"items":[{"id":"a","label":"A"}],"settings":{"weightDecayFactor":2}}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)

	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidConfigError for out-of-range decay, got %v", err)
	}
}

func TestLoadFrom_DefaultsBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"items":[{"id":"a","label":"A"}]}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Settings == nil || cfg.Settings.Backend != BackendFile {
		t.Errorf("expected file backend default, got %+v", cfg.Settings)
	}
}

func TestSave_CreatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := Save(testConfig(), path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	cfg := testConfig()
	cfg.Settings.MaxVisibleItems = 3
	if err := Save(cfg, path); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("expected backup file: %v", err)
	}
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{Items: []Item{{ID: "a", Label: "A"}, {ID: "a", Label: "Dup"}}}
	err := Save(cfg, path)

	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidConfigError for duplicate ids, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("expected no file written for invalid config")
	}
}
