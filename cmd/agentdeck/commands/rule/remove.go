package rule

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a rule",
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
		return runRemove(a, cmd.OutOrStdout(), id)
	},
}

func runRemove(a *app.App, w io.Writer, id string) error {
	if err := a.Store.DeleteRule(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted rule %q.\n", id)
	return nil
}
