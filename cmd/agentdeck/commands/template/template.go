// Package template implements the template subcommands: CRUD over stored
// instruction-file templates.
package template

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/cli/prompt"
	"agentdeck/internal/logging"
)

// Cmd is the parent "template" command.
var Cmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"templates"},
	Short:   "Manage templates",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Load(logging.FromContext(cmd.Context()))
}

func resolveName(a *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	names, err := a.Store.ListTemplates()
	if err != nil {
		return "", err
	}
	return prompt.NewSelector().Select("template", names)
}
