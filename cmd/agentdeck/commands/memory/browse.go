package memory

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/errors"
	"agentdeck/internal/memory"
)

var (
	browseQuery string
	browseSort  string
	browseDesc  bool
	browsePage  int
)

func init() {
	browseCmd.Flags().StringVarP(&browseQuery, "query", "q", "", "substring filter over key, value, and source")
	browseCmd.Flags().StringVar(&browseSort, "sort", "key", "sort order: key or date")
	browseCmd.Flags().BoolVar(&browseDesc, "desc", false, "sort descending")
	browseCmd.Flags().IntVar(&browsePage, "page", 1, "page number")
	Cmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"list", "ls"},
	Short:   "Browse a project's memory",
	Example: `  agentdeck memory browse -p web-app
  agentdeck memory browse --query deploy --sort date --desc --page 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		project, err := resolveProject(a)
		if err != nil {
			return err
		}
		return runBrowse(a, cmd.OutOrStdout(), project)
	},
}

func runBrowse(a *app.App, w io.Writer, project string) error {
	by := memory.SortKey(browseSort)
	if by != memory.SortByKey && by != memory.SortByDate {
		return errors.NewUserError(
			errors.Newf("unknown sort order %q", browseSort),
			"Use --sort key or --sort date")
	}

	entries, err := a.Memory.Load(project)
	if err != nil {
		return err
	}
	page := memory.Browse(entries, browseQuery, by, browseDesc, browsePage)

	if page.Total == 0 {
		fmt.Fprintf(w, "No memories for %q.\n", project)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE\tWHEN")
	for _, row := range page.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Key, row.Value, row.Source, row.Timestamp.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	footer := fmt.Sprintf("page %d/%d (%d total)", page.Number, page.Pages, page.Total)
	fmt.Fprintln(w, a.Theme.Muted.Render(footer))
	return nil
}
