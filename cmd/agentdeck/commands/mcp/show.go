package mcp

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/mcp"
)

var showSecrets bool

func init() {
	showCmd.Flags().BoolVar(&showSecrets, "show-secrets", false,
		"print secret-looking env values instead of masking them")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print an MCP server config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		name, err := resolveName(a, args)
		if err != nil {
			return err
		}
		return runShow(a, cmd.OutOrStdout(), name)
	},
}

func runShow(a *app.App, w io.Writer, name string) error {
	cfg, err := a.Store.ReadMCPServer(name)
	if err != nil {
		return err
	}

	body := cfg.Clean()
	if !showSecrets && len(cfg.Env) > 0 {
		body["env"] = mcp.MaskSecrets(cfg.Env)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{name: body})
}
