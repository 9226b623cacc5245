package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"agentdeck/internal/config"
	"agentdeck/internal/errors"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect agentdeck configuration",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return errors.NewConfigError(err)
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "encoding config")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		fmt.Fprintf(cmd.OutOrStdout(), "store_dir_effective: %s\n", cfg.EffectiveStoreDir())
		return nil
	},
}
