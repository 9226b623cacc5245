package rule

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List rules",
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
	ids, err := a.Store.ListRules()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "No rules. Create one with 'agentdeck rule add'.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, id := range ids {
		r, err := a.Store.ReadRule(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.ID, r.Name)
	}
	return tw.Flush()
}
