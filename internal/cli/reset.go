package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewResetCmd creates the 'reset' command that clears all usage data.
func NewResetCmd() *cobra.Command {
	var yes bool
	var configPath string
	var dataDir string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all usage data",
		Long:  `Zero every item's click count and weight and persist the cleared state`,
		Example: `  strive-nav reset
  strive-nav reset --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd.OutOrStdout(), cmd.InOrStdin(), configPath, dataDir, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.strive-nav.json)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Usage data directory (default ~/.strive-nav)")

	return cmd
}

// runReset clears usage data after confirmation.
func runReset(out io.Writer, in io.Reader, configPath, dataDir string, yes bool) error {
	if !yes {
		fmt.Fprint(out, "This will delete all usage data. Continue? (y/N): ")
		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	eng, _, cleanup, err := openEngine(configPath, dataDir)
	if err != nil {
		return err
	}
	defer cleanup()

	eng.Reset()

	fmt.Fprintln(out, "Usage data cleared")
	return nil
}
