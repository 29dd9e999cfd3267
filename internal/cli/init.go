package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TSKVenkat/strive-nav/internal/config"
)

// NewInitCmd creates the 'init' command that writes a starter configuration.
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration",
		Long:  `Write a starter catalog and default settings to ~/.strive-nav.json`,
		Example: `  strive-nav init
  strive-nav init --force  # overwrite an existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetDefaultConfigPath()
			if err != nil {
				return err
			}
			return runInit(cmd.OutOrStdout(), path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration")

	return cmd
}

// runInit writes the starter config to path.
func runInit(out io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := starterConfig()
	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "Created %s with %d items\n", path, len(cfg.Items))
	fmt.Fprintln(out, "Edit the catalog, then run 'strive-nav rank' to see the ordering.")
	return nil
}

// starterConfig returns a small sample catalog with default settings.
func starterConfig() *config.Config {
	return &config.Config{
		Items: []config.Item{
			{ID: "home", Label: "Home", Href: "/", Tags: []string{"general"}},
			{ID: "projects", Label: "Projects", Href: "/projects", Tags: []string{"work"}},
			{ID: "reports", Label: "Reports", Href: "/reports", Tags: []string{"work", "analytics"}},
			{ID: "settings", Label: "Settings", Href: "/settings", InitialWeight: 0.1},
		},
		Settings: &config.Settings{
			Backend:         config.BackendFile,
			MaxVisibleItems: 3,
		},
	}
}
