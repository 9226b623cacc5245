package rule

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/editor"
)

func init() {
	Cmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a rule in $EDITOR",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		id, err := resolveID(a, args)
		if err != nil {
			return err
		}
		return runEdit(a, cmd.OutOrStdout(), id)
	},
}

func runEdit(a *app.App, w io.Writer, id string) error {
	r, err := a.Store.ReadRule(id)
	if err != nil {
		return err
	}
	edited, err := editor.EditText(id+".md", []byte(r.Content))
	if err != nil {
		return err
	}
	if string(edited) == r.Content {
		fmt.Fprintln(w, "No changes.")
		return nil
	}
	r.Content = string(edited)
	if err := a.Store.SaveRule(r); err != nil {
		return err
	}
	fmt.Fprintf(w, "Updated rule %q.\n", id)
	return nil
}
