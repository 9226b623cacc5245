package skill

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
	addDescription string
	addFromFile    string
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "skill description")
	addCmd.Flags().StringVarP(&addFromFile, "file", "f", "", "read the skill body from a file instead of opening an editor")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a skill",
	Example: `  agentdeck skill add code-review -d "Review checklist"
  agentdeck skill add deploy -f deploy.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runAdd(a, cmd.OutOrStdout(), args[0])
	},
}

func runAdd(a *app.App, w io.Writer, name string) error {
	if _, err := a.Store.ReadSkill(name); err == nil {
		return errors.NewUserError(
			errors.Newf("skill %q already exists", name),
			"Use 'agentdeck skill edit' to change it")
	}

	var content string
	if addFromFile != "" {
		data, err := os.ReadFile(addFromFile)
		if err != nil {
			return errors.Wrapf(err, "reading %s", addFromFile)
		}
		content = string(data)
	} else {
		edited, err := editor.EditText(name+".md", []byte(skillSeed(name)))
		if err != nil {
			return err
		}
		content = string(edited)
	}

	s := &store.Skill{Name: name, Description: addDescription, Content: content}
	if err := a.Store.SaveSkill(s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created skill %q.\n", name)
	return nil
}

func skillSeed(name string) string {
	return fmt.Sprintf("# %s\n\nDescribe the skill here.\n", name)
}
