package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List or search people",
	Long: `List people in the directory.

Without a query, people are listed newest first. With --query, the
match is a case-insensitive substring match on name and results are
ordered alphabetically.

Example:
  roster list
  roster list --query smith --limit 10 --json`,
	RunE: runList,
}

var (
	listQuery string
	listLimit int
)

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by name (substring, case-insensitive)")
	listCmd.Flags().IntVar(&listLimit, "limit", roster.DefaultLimit, "Maximum number of results")
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	people, err := client.List(cmd.Context(), roster.ListParams{
		Query: listQuery,
		Limit: listLimit,
	})
	if err != nil {
		return fmt.Errorf("list people: %w", err)
	}

	return outputPeople(cmd, people)
}
