package memory

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/memory"
)

var setSource string

func init() {
	setCmd.Flags().StringVar(&setSource, "source", "cli", "who recorded the memory")
	Cmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Aliases: []string{"store"},
	Short:   "Store a memory",
	Example: `  agentdeck memory set deploy.target "staging cluster" -p web-app`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		project, err := resolveProject(a)
		if err != nil {
			return err
		}
		return runSet(a, cmd.OutOrStdout(), project, args[0], args[1])
	},
}

func runSet(a *app.App, w io.Writer, project, key, value string) error {
	e := memory.Entry{Value: value, Timestamp: time.Now().UTC(), Source: setSource}
	if err := a.Memory.Set(project, key, e); err != nil {
		return err
	}
	fmt.Fprintf(w, "Remembered %q for %q.\n", key, project)
	return nil
}
