package skill

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/store"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List skills",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runList(a, cmd.OutOrStdout())
	},
}

func runList(a *app.App, w io.Writer) error {
	names, err := a.Store.ListSkills()
	if err != nil {
		return err
	}

	skills := make([]*store.Skill, 0, len(names))
	for _, name := range names {
		s, err := a.Store.ReadSkill(name)
		if err != nil {
			return err
		}
		skills = append(skills, s)
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(skills)
	}

	if len(skills) == 0 {
		fmt.Fprintln(w, "No skills. Create one with 'agentdeck skill add'.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION\tSYNCED")
	for _, s := range skills {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Description, presence(s))
	}
	return tw.Flush()
}

func presence(s *store.Skill) string {
	switch {
	case s.InClaude && s.InAgents:
		return "claude+others"
	case s.InClaude:
		return "claude"
	case s.InAgents:
		return "others"
	default:
		return "-"
	}
}
