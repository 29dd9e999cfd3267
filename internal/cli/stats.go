package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the 'stats' command that dumps the usage records.
func NewStatsCmd() *cobra.Command {
	var jsonOutput bool
	var configPath string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show accumulated usage statistics",
		Long:  `Display the per-item click counts, last activation times, and weights`,
		Example: `  strive-nav stats
  strive-nav stats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), configPath, dataDir, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.strive-nav.json)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Usage data directory (default ~/.strive-nav)")

	return cmd
}

// runStats prints the usage records sorted by weight.
func runStats(out io.Writer, configPath, dataDir string, jsonOutput bool) error {
	eng, _, cleanup, err := openEngine(configPath, dataDir)
	if err != nil {
		return err
	}
	defer cleanup()

	records := eng.Records()

	if jsonOutput {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	// Catalog order for ties, weight first otherwise.
	items := eng.Items()
	sort.SliceStable(items, func(a, b int) bool {
		return records[items[a].ID].Weight > records[items[b].ID].Weight
	})

	fmt.Fprintf(out, "Usage statistics (%d items):\n\n", len(items))
	for _, it := range items {
		rec := records[it.ID]
		fmt.Fprintf(out, "  %s\n", it.ID)
		fmt.Fprintf(out, "    Clicks: %d\n", rec.ClickCount)
		if rec.LastClickTime > 0 {
			fmt.Fprintf(out, "    Last:   %s\n", time.UnixMilli(rec.LastClickTime).Format(time.RFC3339))
		} else {
			fmt.Fprintf(out, "    Last:   never\n")
		}
		fmt.Fprintf(out, "    Weight: %.3f\n", rec.Weight)
		fmt.Fprintln(out)
	}

	return nil
}
