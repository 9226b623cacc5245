package market

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/marketplace"
)

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(searchCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return search(cmd, "")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a catalog",
	Example: `  agentdeck market search github --kind mcp
  agentdeck market search review`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return search(cmd, args[0])
	},
}

func search(cmd *cobra.Command, query string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	kind, err := resolveKind()
	if err != nil {
		return err
	}
	return runSearch(cmd.Context(), a, cmd.OutOrStdout(), kind, query)
}

func runSearch(ctx context.Context, a *app.App, w io.Writer, kind marketplace.Kind, query string) error {
	entries, err := a.Market.Search(ctx, kind, query)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No matches.")
		return nil
	}

	installed, err := a.Installer.Installed(kind)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tINSTALLED")
	for _, e := range entries {
		mark := "-"
		if installed[e.Name] {
			mark = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Description, mark)
	}
	return tw.Flush()
}
