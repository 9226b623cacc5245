package project

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Example: `  agentdeck project list
  agentdeck project list --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runList(a, cmd.OutOrStdout())
	},
}

// listRow is one project in listing output.
type listRow struct {
	Name      string `json:"name"`
	Directory string `json:"directory,omitempty"`
	Skills    int    `json:"skills"`
	Servers   int    `json:"servers"`
	Agents    int    `json:"agents"`
}

func runList(a *app.App, w io.Writer) error {
	names, err := a.Store.ListProjects()
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(names))
	for _, name := range names {
		p, err := a.Store.ReadProject(name)
		if err != nil {
			return err
		}
		rows = append(rows, listRow{
			Name:      p.Name,
			Directory: p.Directory,
			Skills:    len(p.Skills),
			Servers:   len(p.MCPServers),
			Agents:    len(p.Agents),
		})
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No projects. Create one with 'agentdeck project add'.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tSKILLS\tSERVERS\tAGENTS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
			r.Name, r.Directory, r.Skills, r.Servers, r.Agents)
	}
	return tw.Flush()
}
