package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a person's details",
	Long: `Update a person. Only the provided flags are changed.

Example:
  roster update 01J3ZK... --email new@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateName  string
	updateEmail string
	updatePhone string
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "New email address")
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "New mobile number, 04XXXXXXXX")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	person, err := client.Update(cmd.Context(), args[0], roster.UpdateParams{
		Name:        updateName,
		Email:       updateEmail,
		PhoneNumber: updatePhone,
	})
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}

	return outputPerson(cmd, person)
}
