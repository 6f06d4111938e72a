package main

import (
	"github.com/hyperengineering/roster"
	rostermcp "github.com/hyperengineering/roster/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server over stdio for agent integration",
	Long: `Start a Model Context Protocol (MCP) server over stdio.

This allows desktop coding agents to manage the person directory
directly. The server exits cleanly on interrupt or when stdin closes.

Configuration for a desktop agent:

  {
    "mcpServers": {
      "roster": {
        "command": "roster",
        "args": ["mcp"],
        "env": {
          "ROSTER_DB_PATH": "/path/to/people.db"
        }
      }
    }
  }

Environment variables:
  ROSTER_DB_PATH    Path to local SQLite database (default: ~/.roster/people.db)
  ROSTER_DEBUG      Enable debug logging (any non-empty value)
  ROSTER_DEBUG_LOG  Debug log file (default: stderr)`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// The client persists for the server lifetime; the store connection
	// is released when stdin closes or the process is interrupted.
	client, err := roster.New(loadConfig())
	if err != nil {
		return err
	}
	defer client.Close()

	server := rostermcp.NewServer(client)
	return server.Run()
}
