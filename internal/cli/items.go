package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewItemsCmd creates the 'items' command for listing the catalog.
func NewItemsCmd() *cobra.Command {
	var jsonOutput bool
	var configPath string

	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"ls"},
		Short:   "List the navigation catalog",
		Long:    `Display the configured navigation items in catalog order`,
		Example: `  strive-nav items
  strive-nav ls
  strive-nav items --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd.OutOrStdout(), configPath, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.strive-nav.json)")

	return cmd
}

// runItems prints the catalog.
func runItems(out io.Writer, configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(cfg.Items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal items: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Navigation catalog (%d items):\n\n", len(cfg.Items))
	for _, it := range cfg.Items {
		marker := " "
		if it.Disabled {
			marker = "✗"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, it.ID)
		fmt.Fprintf(out, "      Label:  %s\n", it.Label)
		if it.Href != "" {
			fmt.Fprintf(out, "      Href:   %s\n", it.Href)
		}
		if it.InitialWeight != 0 {
			fmt.Fprintf(out, "      Weight: %g\n", it.InitialWeight)
		}
		if len(it.Tags) > 0 {
			fmt.Fprintf(out, "      Tags:   %s\n", strings.Join(it.Tags, ", "))
		}
		fmt.Fprintln(out)
	}

	return nil
}
