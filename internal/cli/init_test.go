package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TSKVenkat/strive-nav/internal/config"
)

func TestNewInitCmd(t *testing.T) {
	cmd := NewInitCmd()

	if cmd == nil {
		t.Fatal("NewInitCmd() returned nil")
	}
	if cmd.Use != "init" {
		t.Errorf("Expected Use='init', got %q", cmd.Use)
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("Flag 'force' not registered")
	}
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	var out bytes.Buffer
	if err := runInit(&out, path, false); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("expected creation notice, got: %s", out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("starter config does not load: %v", err)
	}
	if len(cfg.Items) == 0 {
		t.Error("expected starter catalog to contain items")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("starter config does not validate: %v", err)
	}
}

func TestRunInit_ExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	var out bytes.Buffer
	if err := runInit(&out, path, false); err != nil {
		t.Fatalf("first runInit failed: %v", err)
	}

	// Without --force a second init must refuse.
	if err := runInit(&out, path, false); err == nil {
		t.Error("expected error for existing config without --force")
	}

	if err := runInit(&out, path, true); err != nil {
		t.Errorf("runInit with force failed: %v", err)
	}
}
