package skill

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
	Short:   "Print a skill document",
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
	s, err := a.Store.ReadSkill(name)
	if err != nil {
		return err
	}
	if s.Description != "" {
		fmt.Fprintf(w, "# %s: %s\n\n", s.Name, s.Description)
	}
	fmt.Fprintln(w, s.Content)
	if s.Source != nil {
		fmt.Fprintf(w, "\n(installed from %s)\n", s.Source.Repo)
	}
	return nil
}
