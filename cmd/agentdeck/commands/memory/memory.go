// Package memory implements the memory subcommands: browsing and editing
// the per-project memory store.
package memory

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/errors"
	"agentdeck/internal/logging"
	"agentdeck/internal/session"
)

// Cmd is the parent "memory" command.
var Cmd = &cobra.Command{
	Use:     "memory",
	Aliases: []string{"memories"},
	Short:   "Manage project memory",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var projectFlag string

func init() {
	Cmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "",
		"project to operate on (defaults to the current selection)")
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Load(logging.FromContext(cmd.Context()))
}

// resolveProject picks the project from --project, falling back to the
// remembered selection.
func resolveProject(a *app.App) (string, error) {
	if projectFlag != "" {
		if _, err := a.Store.ReadProject(projectFlag); err != nil {
			return "", err
		}
		return projectFlag, nil
	}
	names, err := a.Store.ListProjects()
	if err != nil {
		return "", err
	}
	name := session.Restore(a.Session.Load().LastProject, names)
	if name == "" {
		return "", errors.NewUserError(
			errors.New("no project selected"),
			"Create a project first, or pass --project")
	}
	return name, nil
}
