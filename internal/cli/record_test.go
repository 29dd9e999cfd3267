package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/TSKVenkat/strive-nav/internal/config"
	"github.com/TSKVenkat/strive-nav/internal/ranking"
	"github.com/TSKVenkat/strive-nav/internal/storage"
)

func TestNewRecordCmd(t *testing.T) {
	cmd := NewRecordCmd()

	if cmd == nil {
		t.Fatal("NewRecordCmd() returned nil")
	}
	if !strings.HasPrefix(cmd.Use, "record") {
		t.Errorf("Expected Use starting with 'record', got %q", cmd.Use)
	}
	if cmd.Args == nil {
		t.Error("Expected exact-args validation")
	}
}

func TestRunRecord(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runRecord(&out, configPath, dataDir, "reports"); err != nil {
		t.Fatalf("runRecord failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("expected click count in output, got: %s", out.String())
	}

	// The activation must be visible in the persisted snapshot.
	store := storage.NewFileStore(dataDir)
	raw, err := store.Get(ranking.DefaultStorageKey)
	if err != nil {
		t.Fatalf("expected persisted snapshot: %v", err)
	}

	var records map[string]ranking.UsageRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if records["reports"].ClickCount != 1 {
		t.Errorf("expected 1 click for reports, got %+v", records["reports"])
	}

	// A second activation accumulates.
	out.Reset()
	if err := runRecord(&out, configPath, dataDir, "reports"); err != nil {
		t.Fatalf("second runRecord failed: %v", err)
	}
	if !strings.Contains(out.String(), "2 total") {
		t.Errorf("expected accumulated click count, got: %s", out.String())
	}
}

func TestRunRecord_UnknownItem(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	err := runRecord(&out, configPath, dataDir, "ghost")
	if err == nil || !strings.Contains(err.Error(), "unknown item") {
		t.Errorf("expected unknown item error, got %v", err)
	}
}

func TestRunRecord_DisabledItem(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	err := runRecord(&out, configPath, dataDir, "archive")
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("expected disabled item error, got %v", err)
	}
}

func TestRunRecord_LearningDisabled(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, &config.Settings{
		Backend:         config.BackendFile,
		DisableLearning: true,
	})

	var out bytes.Buffer
	if err := runRecord(&out, configPath, dataDir, "reports"); err != nil {
		t.Fatalf("runRecord failed: %v", err)
	}
	if !strings.Contains(out.String(), "Learning is disabled") {
		t.Errorf("expected learning-disabled notice, got: %s", out.String())
	}

	store := storage.NewFileStore(dataDir)
	if _, err := store.Get(ranking.DefaultStorageKey); err != storage.ErrNotFound {
		t.Errorf("expected no snapshot persisted, got %v", err)
	}
}
