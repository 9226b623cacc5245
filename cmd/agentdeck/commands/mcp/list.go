package mcp

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/mcp"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List MCP server configs",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runList(a, cmd.OutOrStdout())
	},
}

func runList(a *app.App, w io.Writer) error {
	names, err := a.Store.ListMCPServers()
	if err != nil {
		return err
	}

	servers := make([]*mcp.ServerConfig, 0, len(names))
	for _, name := range names {
		cfg, err := a.Store.ReadMCPServer(name)
		if err != nil {
			return err
		}
		servers = append(servers, cfg)
	}

	if listJSON {
		rows := make([]map[string]any, 0, len(servers))
		for _, cfg := range servers {
			row := cfg.Clean()
			row["name"] = cfg.Name
			rows = append(rows, row)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(servers) == 0 {
		fmt.Fprintln(w, "No MCP servers. Create one with 'agentdeck mcp add'.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tENDPOINT\tENABLED")
	for _, cfg := range servers {
		endpoint := cfg.Command
		if cfg.Remote() {
			endpoint = cfg.URL
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", cfg.Name, cfg.Type, endpoint, cfg.Enabled)
	}
	return tw.Flush()
}
