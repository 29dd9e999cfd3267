/*
Package main is the entry point for the strive-nav CLI.

strive-nav maintains a usage-adaptive ordering of a navigation catalog:
every recorded activation boosts an item's weight, weights decay over time,
and the ranked list is split into a visible head and an overflow tail.

Usage:
  strive-nav [command]

Available Commands:
  init        Create a starter configuration
  items       List the navigation catalog
  rank        Show the usage-ranked navigation order
  record      Record an activation of a navigation item
  active      Show or set the default active item
  stats       Show accumulated usage statistics
  reset       Clear all usage data
  help        Help about any command

Examples:
  # Create a starter config
  strive-nav init

  # Record some activations and watch the ordering adapt
  strive-nav record reports
  strive-nav rank --max 3
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TSKVenkat/strive-nav/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strive-nav",
		Short: "Usage-adaptive navigation ranking",
		Long: `strive-nav ranks a navigation catalog by accumulated usage.

Each recorded activation boosts an item's weight; weights decay on every
ranking pass, recently used items get a vanishing recency bonus, and items
matching the current context tags get a relevance bonus. The ranked list is
split into a bounded visible head and an overflow tail.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.AddCommand(cli.NewInitCmd())
	rootCmd.AddCommand(cli.NewItemsCmd())
	rootCmd.AddCommand(cli.NewRankCmd())
	rootCmd.AddCommand(cli.NewRecordCmd())
	rootCmd.AddCommand(cli.NewActiveCmd())
	rootCmd.AddCommand(cli.NewStatsCmd())
	rootCmd.AddCommand(cli.NewResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
