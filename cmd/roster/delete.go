package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a person by ID",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	if err := client.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	outputText(cmd, "Deleted %s\n", args[0])
	return nil
}
