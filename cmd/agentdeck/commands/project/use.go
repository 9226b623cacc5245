package project

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/session"
)

func init() {
	Cmd.AddCommand(useCmd)
	Cmd.AddCommand(currentCmd)
}

var useCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Remember a project as the current selection",
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
		if _, err := a.Store.ReadProject(name); err != nil {
			return err
		}
		if err := a.Session.SetLastProject(name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current project: %s\n", name)
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current project selection",
	Long: `Current prints the remembered project if it still exists, otherwise
the first project, the same rule the desktop shell applies on startup.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runCurrent(a, cmd.OutOrStdout())
	},
}

func runCurrent(a *app.App, w io.Writer) error {
	names, err := a.Store.ListProjects()
	if err != nil {
		return err
	}
	selected := session.Restore(a.Session.Load().LastProject, names)
	if selected == "" {
		fmt.Fprintln(w, "No projects.")
		return nil
	}
	fmt.Fprintln(w, selected)
	return nil
}
