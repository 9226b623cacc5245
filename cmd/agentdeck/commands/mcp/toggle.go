package mcp

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(enableCmd)
	Cmd.AddCommand(disableCmd)
}

var enableCmd = &cobra.Command{
	Use:   "enable [name]",
	Short: "Enable a server for syncing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  toggleRunE(true),
}

var disableCmd = &cobra.Command{
	Use:   "disable [name]",
	Short: "Disable a server without deleting it",
	Long: `Disable keeps the config but excludes the server from syncs. The next
sync of any project that selects it retracts it from agent config files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: toggleRunE(false),
}

func toggleRunE(enabled bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		name, err := resolveName(a, args)
		if err != nil {
			return err
		}
		return runToggle(a, cmd.OutOrStdout(), name, enabled)
	}
}

func runToggle(a *app.App, w io.Writer, name string, enabled bool) error {
	cfg, err := a.Store.ReadMCPServer(name)
	if err != nil {
		return err
	}
	if cfg.Enabled == enabled {
		fmt.Fprintf(w, "MCP server %q already %s.\n", name, state(enabled))
		return nil
	}
	cfg.Enabled = enabled
	if err := a.Store.SaveMCPServer(cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "MCP server %q %s.\n", name, state(enabled))
	return nil
}

func state(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
