package project

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/internal/sync"
)

func init() {
	Cmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <directory>",
	Short: "Detect agent artifacts in a project directory",
	Example: `  agentdeck project detect ~/src/web-app`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect(cmd.OutOrStdout(), args[0])
	},
}

func runDetect(w io.Writer, dir string) error {
	d, err := sync.Autodetect(dir)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
