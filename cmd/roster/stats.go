package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	stats, err := client.Stats()
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}

	if outputJSON {
		return outputAsJSON(cmd, stats)
	}

	outputText(cmd, "People:   %d\n", stats.PeopleCount)
	outputText(cmd, "Database: %s\n", stats.DBPath)
	outputText(cmd, "Schema:   %s\n", stats.SchemaVer)
	return nil
}
