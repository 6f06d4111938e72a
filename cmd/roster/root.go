package main

import (
	"github.com/hyperengineering/roster"
	"github.com/spf13/cobra"
)

var (
	cfgDBPath string
	cfgAPIKey string
	cfgDebug  bool

	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Roster - person directory CLI",
	Long: `Roster is a person directory backed by a local SQLite database.

It manages people records (name, email, mobile number) and exposes the
same CRUD operations to AI agents through an MCP tool server, over
stdio or HTTP.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDBPath, "db-path", "", "Path to people database (default: ~/.roster/people.db)")
	rootCmd.PersistentFlags().StringVar(&cfgAPIKey, "api-key", "", "API key required from HTTP callers")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON instead of human-readable text")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig builds the effective configuration: environment first,
// then flag overrides. Defaults are filled in by roster.New.
func loadConfig() roster.Config {
	cfg := roster.ConfigFromEnv()

	if cfgDBPath != "" {
		cfg.DBPath = cfgDBPath
	}
	if cfgAPIKey != "" {
		cfg.APIKey = cfgAPIKey
	}
	if cfgDebug {
		cfg.Debug = true
	}

	return cfg
}
