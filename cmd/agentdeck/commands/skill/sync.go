package skill

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agentdeck/cmd/agentdeck/commands/flags"
	"agentdeck/internal/app"
	"agentdeck/internal/cli"
)

var syncAll bool

func init() {
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "sync every stored skill")
	Cmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [name]",
	Short: "Copy a skill into agent skill directories",
	Example: `  agentdeck skill sync code-review
  agentdeck skill sync code-review -a claude -a codex
  agentdeck skill sync --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		if syncAll {
			return runSyncAll(a, cmd.OutOrStdout())
		}
		name, err := resolveName(a, args)
		if err != nil {
			return err
		}
		return runSync(a, cmd.OutOrStdout(), name)
	},
}

func runSync(a *app.App, w io.Writer, name string) error {
	agents := flags.GetAgentFlag()
	if len(agents) > 0 {
		resolved, err := cli.ResolveAgents(agents, nil)
		if err != nil {
			return err
		}
		agents = resolved
	}
	if err := a.Syncer.SyncSkill(name, agents); err != nil {
		return err
	}
	if len(agents) == 0 {
		fmt.Fprintf(w, "Synced skill %q to all agents.\n", name)
	} else {
		fmt.Fprintf(w, "Synced skill %q to %s.\n", name, strings.Join(agents, ", "))
	}
	return nil
}

func runSyncAll(a *app.App, w io.Writer) error {
	names, err := a.Syncer.SyncAllSkills()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Synced %d skill(s).\n", len(names))
	return nil
}
