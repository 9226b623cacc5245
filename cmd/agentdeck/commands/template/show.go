package template

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
	Use:     "show [name]",
	Aliases: []string{"cat"},
	Short:   "Print a template",
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
		return runShow(a, cmd.OutOrStdout(), name)
	},
}

func runShow(a *app.App, w io.Writer, name string) error {
	tpl, err := a.Store.ReadTemplate(name)
	if err != nil {
		return err
	}
	fmt.Fprint(w, tpl.Content)
	return nil
}
