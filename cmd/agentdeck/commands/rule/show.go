package rule

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:     "show [id]",
	Aliases: []string{"cat"},
	Short:   "Print a rule document",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		id, err := resolveID(a, args)
		if err != nil {
			return err
		}
		return runShow(a, cmd.OutOrStdout(), id)
	},
}

func runShow(a *app.App, w io.Writer, id string) error {
	r, err := a.Store.ReadRule(id)
	if err != nil {
		return err
	}
	if r.Name != r.ID {
		fmt.Fprintf(w, "# %s\n\n", r.Name)
	}
	fmt.Fprintln(w, r.Content)
	return nil
}
