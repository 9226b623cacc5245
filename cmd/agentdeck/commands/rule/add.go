package rule

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/editor"
	"agentdeck/internal/errors"
	"agentdeck/internal/store"
)

var (
	addName     string
	addFromFile string
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "display name (defaults to the id)")
	addCmd.Flags().StringVarP(&addFromFile, "file", "f", "", "read the rule body from a file instead of opening an editor")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Create a rule",
	Example: `  agentdeck rule add no-force-push -n "Never force push"
  agentdeck rule add style-guide -f style.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runAdd(a, cmd.OutOrStdout(), args[0])
	},
}

func runAdd(a *app.App, w io.Writer, id string) error {
	if _, err := a.Store.ReadRule(id); err == nil {
		return errors.NewUserError(
			errors.Newf("rule %q already exists", id),
			"Use 'agentdeck rule edit' to change it")
	}

	var content string
	if addFromFile != "" {
		data, err := os.ReadFile(addFromFile)
		if err != nil {
			return errors.Wrapf(err, "reading %s", addFromFile)
		}
		content = string(data)
	} else {
		edited, err := editor.EditText(id+".md", nil)
		if err != nil {
			return err
		}
		content = string(edited)
	}

	name := addName
	if name == "" {
		name = id
	}
	if err := a.Store.SaveRule(&store.Rule{ID: id, Name: name, Content: content}); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created rule %q.\n", id)
	return nil
}
