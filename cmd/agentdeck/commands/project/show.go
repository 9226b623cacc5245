package project

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a project's details",
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
	p, err := a.Store.ReadProject(name)
	if err != nil {
		return err
	}

	// Viewing a project makes it the remembered selection.
	if err := a.Session.SetLastProject(name); err != nil {
		a.Log.Debug("saving session state failed", "error", err)
	}

	if showJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Fprintln(w, a.Theme.Title.Render(p.Name))
	if p.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", p.Description)
	}
	if p.Directory != "" {
		fmt.Fprintf(w, "Directory:   %s\n", p.Directory)
	}
	fmt.Fprintf(w, "Skills:      %s\n", joinOrDash(p.Skills))
	fmt.Fprintf(w, "MCP servers: %s\n", joinOrDash(p.MCPServers))
	fmt.Fprintf(w, "Agents:      %s\n", joinOrDash(p.Agents))
	fmt.Fprintf(w, "Updated:     %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
