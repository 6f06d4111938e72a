package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a person by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	person, err := client.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get person: %w", err)
	}

	return outputPerson(cmd, person)
}
