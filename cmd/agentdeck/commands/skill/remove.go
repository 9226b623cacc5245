package skill

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a skill",
	Long: `Remove deletes the stored skill document. Projects that reference it
keep the reference; the next sync reports it as skipped.`,
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
		return runRemove(a, cmd.OutOrStdout(), name)
	},
}

func runRemove(a *app.App, w io.Writer, name string) error {
	if err := a.Store.DeleteSkill(name); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted skill %q.\n", name)
	return nil
}
