package main

import (
	"fmt"

	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the directory with sample people",
	Long: `Delete all existing people and insert a sample data set.

Intended for demos and local development only.`,
	RunE: runSeed,
}

// samplePeople is the demo data set inserted by the seed command.
var samplePeople = []roster.CreateParams{
	{Name: "John Doe", PhoneNumber: "0412345678", Email: "john@example.com"},
	{Name: "Jane Smith", PhoneNumber: "0423456789", Email: "jane@example.com"},
	{Name: "Alice Johnson", PhoneNumber: "0434567890", Email: "alice@example.com"},
	{Name: "Bob Williams", PhoneNumber: "0445678901", Email: "bob@example.com"},
	{Name: "Charlie Brown", PhoneNumber: "0456789012", Email: "charlie@example.com"},
	{Name: "Emily Davis", PhoneNumber: "0467890123", Email: "emily@example.com"},
	{Name: "Frank Miller", PhoneNumber: "0478901234", Email: "frank@example.com"},
	{Name: "Grace Lee", PhoneNumber: "0489012345", Email: "grace@example.com"},
	{Name: "Henry Moore", PhoneNumber: "0490123456", Email: "henry@example.com"},
	{Name: "Isabella Young", PhoneNumber: "0401234567", Email: "isabella@example.com"},
}

func runSeed(cmd *cobra.Command, args []string) error {
	client, err := roster.New(loadConfig())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	defer client.Close()

	created, err := client.Reset(cmd.Context(), samplePeople)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	outputText(cmd, "Seeded %d people\n", created)
	return nil
}
