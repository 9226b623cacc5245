package memory

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
)

func init() {
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(clearCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Aliases: []string{"rm"},
	Short:   "Delete a memory",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		project, err := resolveProject(a)
		if err != nil {
			return err
		}
		return runDelete(a, cmd.OutOrStdout(), project, args[0])
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all memories of a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		project, err := resolveProject(a)
		if err != nil {
			return err
		}
		return runClear(a, cmd.OutOrStdout(), project)
	},
}

func runDelete(a *app.App, w io.Writer, project, key string) error {
	if err := a.Memory.Delete(project, key); err != nil {
		return err
	}
	fmt.Fprintf(w, "Forgot %q for %q.\n", key, project)
	return nil
}

func runClear(a *app.App, w io.Writer, project string) error {
	if err := a.Memory.Clear(project); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all memories for %q.\n", project)
	return nil
}
