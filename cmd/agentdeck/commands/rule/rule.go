// Package rule implements the rule subcommands: CRUD over stored rule
// documents, keyed by machine id with a human display name.
package rule

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/cli/prompt"
	"agentdeck/internal/logging"
)

// Cmd is the parent "rule" command.
var Cmd = &cobra.Command{
	Use:     "rule",
	Aliases: []string{"rules"},
	Short:   "Manage rules",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Load(logging.FromContext(cmd.Context()))
}

func resolveID(a *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	ids, err := a.Store.ListRules()
	if err != nil {
		return "", err
	}
	return prompt.NewSelector().Select("rule", ids)
}
