package template

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

var addFromFile string

func init() {
	addCmd.Flags().StringVarP(&addFromFile, "file", "f", "", "read the template body from a file instead of opening an editor")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runAdd(a, cmd.OutOrStdout(), args[0])
	},
}

func runAdd(a *app.App, w io.Writer, name string) error {
	if _, err := a.Store.ReadTemplate(name); err == nil {
		return errors.NewUserError(
			errors.Newf("template %q already exists", name),
			"Remove it first to replace it")
	}

	var content string
	if addFromFile != "" {
		data, err := os.ReadFile(addFromFile)
		if err != nil {
			return errors.Wrapf(err, "reading %s", addFromFile)
		}
		content = string(data)
	} else {
		edited, err := editor.EditText(name+".md", nil)
		if err != nil {
			return err
		}
		content = string(edited)
	}

	if err := a.Store.SaveTemplate(&store.Template{Name: name, Content: content}); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created template %q.\n", name)
	return nil
}
