// Package project implements the project subcommands: CRUD over stored
// projects, dependency autodetection, sync, and selection state.
package project

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/cli/prompt"
	"agentdeck/internal/logging"
)

// Cmd is the parent "project" command.
var Cmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects"},
	Short:   "Manage projects",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Load(logging.FromContext(cmd.Context()))
}

// resolveName returns the project name from args, prompting when absent.
func resolveName(a *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	names, err := a.Store.ListProjects()
	if err != nil {
		return "", err
	}
	return prompt.NewSelector().Select("project", names)
}
