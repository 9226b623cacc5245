package template

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
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
	names, err := a.Store.ListTemplates()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "No templates. Create one with 'agentdeck template add' or install one from the marketplace.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
