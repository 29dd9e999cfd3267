package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TSKVenkat/strive-nav/internal/config"
)

// NewActiveCmd creates the 'active' command for showing or setting the
// default active item.
func NewActiveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "active [id]",
		Short: "Show or set the default active item",
		Long: `Without arguments, print the item that starts out active. With an id,
store it as the default in the configuration.`,
		Example: `  strive-nav active
  strive-nav active reports`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runActive(cmd.OutOrStdout(), configPath, id)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.strive-nav.json)")

	return cmd
}

// runActive shows the default active item, or persists a new one.
func runActive(out io.Writer, configPath, id string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if id == "" {
		active := cfg.Settings.DefaultActiveID
		if active == "" && len(cfg.Items) > 0 {
			active = cfg.Items[0].ID
		}
		fmt.Fprintf(out, "Active: %s\n", active)
		return nil
	}

	found := false
	for _, it := range cfg.Items {
		if it.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown item '%s' (run 'strive-nav items' to list the catalog)", id)
	}

	cfg.Settings.DefaultActiveID = id

	path := configPath
	if path == "" {
		if path, err = config.GetDefaultConfigPath(); err != nil {
			return err
		}
	}
	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "Active item set to '%s'\n", id)
	return nil
}
