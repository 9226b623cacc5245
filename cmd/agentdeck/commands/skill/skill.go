// Package skill implements the skill subcommands: CRUD over stored skill
// documents plus syncing them into agent skill directories.
package skill

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/cli/prompt"
	"agentdeck/internal/logging"
)

// Cmd is the parent "skill" command.
var Cmd = &cobra.Command{
	Use:     "skill",
	Aliases: []string{"skills"},
	Short:   "Manage skills",
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
	names, err := a.Store.ListSkills()
	if err != nil {
		return "", err
	}
	return prompt.NewSelector().Select("skill", names)
}
