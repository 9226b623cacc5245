package project

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [name]",
	Short: "Sync a project into its agents' config files",
	Long: `Sync writes the project's selected MCP servers into each target
agent's native config file and copies its skills into each agent's
skill directory. Only entries previously written by agentdeck are ever
retracted; hand-written entries and unrelated settings are preserved.
Existing config files are snapshotted first (see 'agentdeck backup').`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		name, err := resolveName(a, args)
		if err != nil {
			return err
		}
		return runSync(a, cmd.OutOrStdout(), name)
	},
}

func runSync(a *app.App, w io.Writer, name string) error {
	res, err := a.Syncer.SyncProject(name)
	if err != nil {
		return err
	}

	for _, ar := range res.Agents {
		var parts []string
		if len(ar.Upserted) > 0 {
			parts = append(parts, fmt.Sprintf("%d server(s)", len(ar.Upserted)))
		}
		if len(ar.Removed) > 0 {
			parts = append(parts, fmt.Sprintf("%d retracted", len(ar.Removed)))
		}
		if len(ar.Skills) > 0 {
			parts = append(parts, fmt.Sprintf("%d skill(s)", len(ar.Skills)))
		}
		if ar.Instructions != "" {
			parts = append(parts, "instructions")
		}
		if len(parts) == 0 {
			parts = append(parts, "nothing to do")
		}
		fmt.Fprintf(w, "%s: %s\n", a.Theme.Accent.Render(ar.Agent), strings.Join(parts, ", "))
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintln(w, a.Theme.Warning.Render("skipped missing reference: "+skipped))
	}
	return nil
}
