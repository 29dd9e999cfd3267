package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TSKVenkat/strive-nav/internal/ranking"
)

// NewRankCmd creates the 'rank' command that prints the current ordering.
func NewRankCmd() *cobra.Command {
	var jsonOutput bool
	var configPath string
	var dataDir string
	var contextTags []string
	var maxVisible int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show the usage-ranked navigation order",
		Long: `Compute the current ranking from accumulated usage and print the
visible/hidden partition. Each invocation applies one decay pass.`,
		Example: `  strive-nav rank
  strive-nav rank --max 3
  strive-nav rank --context analytics,work
  strive-nav rank --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd.OutOrStdout(), configPath, dataDir, jsonOutput, contextTags, maxVisible)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.strive-nav.json)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Usage data directory (default ~/.strive-nav)")
	cmd.Flags().StringSliceVarP(&contextTags, "context", "c", nil, "Context tags for the relevance boost")
	cmd.Flags().IntVarP(&maxVisible, "max", "m", -1, "Override the visible item limit")

	return cmd
}

// runRank computes and prints the ranking.
func runRank(out io.Writer, configPath, dataDir string, jsonOutput bool, contextTags []string, maxVisible int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if maxVisible >= 0 {
		cfg.Settings.MaxVisibleItems = maxVisible
	}

	rankingCfg := cfg.RankingConfig()
	if len(contextTags) > 0 {
		rankingCfg.EnableContextAwareness = true
	}

	store, cleanup := buildStore(cfg.Settings.Backend, dataDir)
	defer cleanup()

	eng, err := ranking.New(cfg.RankingItems(), rankingCfg, store)
	if err != nil {
		return err
	}
	eng.SetContextTags(contextTags)

	r := eng.Ranking()

	if jsonOutput {
		payload := struct {
			Visible []ranking.Item `json:"visible"`
			Hidden  []ranking.Item `json:"hidden"`
			Active  string         `json:"active"`
		}{r.Visible, r.Hidden, eng.Active()}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	active := eng.Active()
	fmt.Fprintf(out, "Visible (%d):\n", len(r.Visible))
	printRanked(out, r.Visible, active, 1)
	if len(r.Hidden) > 0 {
		fmt.Fprintf(out, "\nHidden (%d):\n", len(r.Hidden))
		printRanked(out, r.Hidden, active, len(r.Visible)+1)
	}

	return nil
}

func printRanked(out io.Writer, items []ranking.Item, active string, start int) {
	for i, it := range items {
		marker := " "
		if it.ID == active {
			marker = "*"
		}
		fmt.Fprintf(out, "  %2d. %s %s (%s)\n", start+i, marker, it.Label, it.ID)
	}
}
