// Package mcp implements the mcp subcommands: CRUD over stored MCP server
// configs. Secret-looking env values are masked on output unless
// --show-secrets is given.
package mcp

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/cli/prompt"
	"agentdeck/internal/logging"
)

// Cmd is the parent "mcp" command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP server configs",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Load(logging.FromContext(cmd.Context()))
}

func resolveName(a *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	names, err := a.Store.ListMCPServers()
	if err != nil {
		return "", err
	}
	return prompt.NewSelector().Select("MCP server", names)
}
