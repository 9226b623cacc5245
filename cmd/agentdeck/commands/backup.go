package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agentdeck/internal/paths"
	"agentdeck/internal/sync"
)

var backupKeep int

func init() {
	backupPruneCmd.Flags().IntVar(&backupKeep, "keep", 5,
		"snapshots to keep per config file")
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupPruneCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage pre-sync snapshots of agent config files",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		backups, err := sync.ListBackups(paths.BackupDir())
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups.")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FILE\tTIME\tSIZE")
		for _, b := range backups {
			fmt.Fprintf(tw, "%s\t%s\t%d\n",
				b.Original, b.Time.Format("2006-01-02 15:04:05"), b.Size)
		}
		return tw.Flush()
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old snapshots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		removed, err := sync.PruneBackups(paths.BackupDir(), backupKeep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d snapshot(s).\n", removed)
		return nil
	},
}
