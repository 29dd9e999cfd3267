package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/TSKVenkat/strive-nav/internal/ranking"
)

func TestRunStats(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runRecord(&out, configPath, dataDir, "reports"); err != nil {
		t.Fatalf("runRecord failed: %v", err)
	}

	out.Reset()
	if err := runStats(&out, configPath, dataDir, false); err != nil {
		t.Fatalf("runStats failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Clicks: 1") {
		t.Errorf("expected click count in stats, got:\n%s", text)
	}
	// The activated item sorts first.
	if strings.Index(text, "reports") > strings.Index(text, "home") {
		t.Errorf("expected reports listed first, got:\n%s", text)
	}
}

func TestRunStats_JSON(t *testing.T) {
	configPath, dataDir := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runStats(&out, configPath, dataDir, true); err != nil {
		t.Fatalf("runStats failed: %v", err)
	}

	var records map[string]ranking.UsageRecord
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("stats --json output does not parse: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestRunItems(t *testing.T) {
	configPath, _ := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runItems(&out, configPath, false); err != nil {
		t.Fatalf("runItems failed: %v", err)
	}

	text := out.String()
	for _, id := range []string{"home", "reports", "archive"} {
		if !strings.Contains(text, id) {
			t.Errorf("expected item %s in listing, got:\n%s", id, text)
		}
	}
}

func TestRunItems_JSON(t *testing.T) {
	configPath, _ := writeTestConfig(t, nil)

	var out bytes.Buffer
	if err := runItems(&out, configPath, true); err != nil {
		t.Fatalf("runItems failed: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("items --json output does not parse: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}
}
