// Package market implements the marketplace subcommands: listing,
// searching, and installing community skills, MCP servers, and templates.
package market

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/errors"
	"agentdeck/internal/logging"
	"agentdeck/internal/marketplace"
)

// Cmd is the parent "market" command.
var Cmd = &cobra.Command{
	Use:     "market",
	Aliases: []string{"marketplace"},
	Short:   "Browse and install marketplace entries",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var kindFlag string

func init() {
	Cmd.PersistentFlags().StringVarP(&kindFlag, "kind", "k", "skill",
		"catalog to browse: skill, mcp, or template")
}

func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.Load(logging.FromContext(cmd.Context()))
}

func resolveKind() (marketplace.Kind, error) {
	switch k := marketplace.Kind(kindFlag); k {
	case marketplace.KindSkill, marketplace.KindMCP, marketplace.KindTemplate:
		return k, nil
	default:
		return "", errors.NewUserError(
			errors.Newf("unknown catalog kind %q", kindFlag),
			"Use --kind skill, mcp, or template")
	}
}
