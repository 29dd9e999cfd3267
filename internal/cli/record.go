package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRecordCmd creates the 'record' command that registers an activation.
func NewRecordCmd() *cobra.Command {
	var configPath string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "record <id>",
		Short: "Record an activation of a navigation item",
		Long: `Increment the click count of an item and boost its weight. Disabled
items are refused here: the engine itself does not gate on the disabled
flag, so the gate lives at this boundary.`,
		Example: `  strive-nav record reports`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd.OutOrStdout(), configPath, dataDir, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.strive-nav.json)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Usage data directory (default ~/.strive-nav)")

	return cmd
}

// runRecord records one activation of the given item.
func runRecord(out io.Writer, configPath, dataDir, id string) error {
	eng, cfg, cleanup, err := openEngine(configPath, dataDir)
	if err != nil {
		return err
	}
	defer cleanup()

	found := false
	for _, it := range cfg.Items {
		if it.ID != id {
			continue
		}
		found = true
		if it.Disabled {
			return fmt.Errorf("item '%s' is disabled", id)
		}
	}
	if !found {
		return fmt.Errorf("unknown item '%s' (run 'strive-nav items' to list the catalog)", id)
	}

	if cfg.Settings.DisableLearning {
		fmt.Fprintln(out, "Learning is disabled; activation not recorded.")
		return nil
	}

	eng.RecordActivation(id)
	eng.SetActive(id)

	rec := eng.Records()[id]
	fmt.Fprintf(out, "Recorded activation of '%s' (%d total, weight %.3f)\n", id, rec.ClickCount, rec.Weight)
	return nil
}
