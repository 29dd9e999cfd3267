package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TSKVenkat/strive-nav/internal/config"
)

// writeTestConfig writes a three-item catalog to a temp dir and returns the
// config path and the usage data directory.
func writeTestConfig(t *testing.T, settings *config.Settings) (string, string) {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	dataDir := filepath.Join(dir, "data")

	if settings == nil {
		settings = &config.Settings{Backend: config.BackendFile, MaxVisibleItems: 2}
	}
	cfg := &config.Config{
		Items: []config.Item{
			{ID: "home", Label: "Home", Href: "/"},
			{ID: "reports", Label: "Reports", Href: "/reports", Tags: []string{"analytics"}},
			{ID: "archive", Label: "Archive", Href: "/archive", Disabled: true},
		},
		Settings: settings,
	}
	if err := config.Save(cfg, configPath); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	return configPath, dataDir
}

func TestNewRankCmd(t *testing.T) {
	cmd := NewRankCmd()

	if cmd == nil {
		t.Fatal("NewRankCmd() returned nil")
	}
	if cmd.Use != "rank" {
		t.Errorf("Expected Use='rank', got %q", cmd.Use)
	}

	for _, flag := range []string{"json", "context", "max", "config", "data-dir"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Flag %q not registered", flag)
		}
	}
}

func TestRunRank_InitialOrder(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runRank(&out, configPath, dataDir, false, nil, -1); err != nil {
		t.Fatalf("runRank failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Visible (2)") {
		t.Errorf("expected two visible items, got:\n%s", text)
	}
	if !strings.Contains(text, "Hidden (1)") {
		t.Errorf("expected one hidden item, got:\n%s", text)
	}

	// Catalog order on a fresh store.
	home := strings.Index(text, "(home)")
	reports := strings.Index(text, "(reports)")
	archive := strings.Index(text, "(archive)")
	if home < 0 || reports < 0 || archive < 0 || !(home < reports && reports < archive) {
		t.Errorf("expected catalog order home < reports < archive, got:\n%s", text)
	}
}

func TestRunRank_ActivationChangesOrder(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runRecord(&out, configPath, dataDir, "reports"); err != nil {
		t.Fatalf("runRecord failed: %v", err)
	}

	out.Reset()
	if err := runRank(&out, configPath, dataDir, false, nil, -1); err != nil {
		t.Fatalf("runRank failed: %v", err)
	}

	text := out.String()
	if strings.Index(text, "(reports)") > strings.Index(text, "(home)") {
		t.Errorf("expected reports ranked above home after activation, got:\n%s", text)
	}
}

func TestRunRank_MaxOverride(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runRank(&out, configPath, dataDir, false, nil, 1); err != nil {
		t.Fatalf("runRank failed: %v", err)
	}

	if !strings.Contains(out.String(), "Visible (1)") {
		t.Errorf("expected --max 1 to bound the visible set, got:\n%s", out.String())
	}
}

func TestRunRank_ContextTags(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, &config.Settings{Backend: config.BackendFile})

	var out bytes.Buffer
	if err := runRank(&out, configPath, dataDir, false, []string{"analytics"}, -1); err != nil {
		t.Fatalf("runRank failed: %v", err)
	}

	text := out.String()
	if strings.Index(text, "(reports)") > strings.Index(text, "(home)") {
		t.Errorf("expected reports boosted by matching context tag, got:\n%s", text)
	}
}

func TestRunRank_JSON(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runRank(&out, configPath, dataDir, true, nil, -1); err != nil {
		t.Fatalf("runRank failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{`"visible"`, `"hidden"`, `"active"`} {
		if !strings.Contains(text, want) {
			t.Errorf("expected JSON field %s, got:\n%s", want, text)
		}
	}
}

func TestRunRank_MissingConfig(t *testing.T) {
	var out bytes.Buffer
	err := runRank(&out, filepath.Join(t.TempDir(), "missing.json"), t.TempDir(), false, nil, -1)
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}
