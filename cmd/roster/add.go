package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new person",
	Long: `Add a new person to the directory.

Example:
  roster add --name "Jane Smith" --email jane@example.com --phone 0423456789`,
	RunE: runAdd,
}

var (
	addName  string
	addEmail string
	addPhone string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Full name (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Email address (required)")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "Mobile number, 04XXXXXXXX (required)")

	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("email")
	addCmd.MarkFlagRequired("phone")
}

func runAdd(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	person, err := client.Create(cmd.Context(), roster.CreateParams{
		Name:        addName,
		Email:       addEmail,
		PhoneNumber: addPhone,
	})
	if err != nil {
		return fmt.Errorf("add person: %w", err)
	}

	return outputPerson(cmd, person)
}
