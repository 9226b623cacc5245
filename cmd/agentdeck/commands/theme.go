package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentdeck/internal/config"
	"agentdeck/internal/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List available color themes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		active := theme.Get(cfg.Theme).Name
		for _, name := range theme.Names() {
			// Each entry previews its own palette.
			pal := theme.Get(name)
			marker := " "
			if name == active {
				marker = pal.Success.Render("*")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, pal.Accent.Render(name))
		}
		return nil
	},
}
