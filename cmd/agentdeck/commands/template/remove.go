package template

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
	Use:     "remove [name]",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a template",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		name, err := resolveName(a, args)
		if err != nil {
			return err
		}
		return runRemove(a, cmd.OutOrStdout(), name)
	},
}

func runRemove(a *app.App, w io.Writer, name string) error {
	if err := a.Store.DeleteTemplate(name); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted template %q.\n", name)
	return nil
}
