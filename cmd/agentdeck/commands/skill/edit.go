package skill

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
	Use:   "edit [name]",
	Short: "Edit a skill in $EDITOR",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		name, err := resolveName(a, args)
		if err != nil {
			return err
		}
		return runEdit(a, cmd.OutOrStdout(), name)
	},
}

func runEdit(a *app.App, w io.Writer, name string) error {
	s, err := a.Store.ReadSkill(name)
	if err != nil {
		return err
	}
	edited, err := editor.EditText(name+".md", []byte(s.Content))
	if err != nil {
		return err
	}
	if string(edited) == s.Content {
		fmt.Fprintln(w, "No changes.")
		return nil
	}
	s.Content = string(edited)
	if err := a.Store.SaveSkill(s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Updated skill %q.\n", name)
	return nil
}
