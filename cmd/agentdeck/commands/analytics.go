package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agentdeck/internal/analytics"
	"agentdeck/internal/config"
	"agentdeck/internal/errors"
)

func init() {
	analyticsCmd.AddCommand(analyticsStatusCmd)
	analyticsCmd.AddCommand(analyticsOnCmd)
	analyticsCmd.AddCommand(analyticsOffCmd)
	rootCmd.AddCommand(analyticsCmd)
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Control anonymous usage reporting",
	Long: `Analytics is off by default. Turning it on records anonymous usage
events (command names only, no content) tied to a random id. Events are
only sent from builds compiled with a reporting key.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var analyticsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current consent state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		state := "off"
		if cfg.Analytics.Enabled {
			state = "on"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "analytics: %s\n", state)
		return nil
	},
}

var analyticsOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Opt in to anonymous usage reporting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		userID := cfg.Analytics.UserID
		if userID == "" {
			userID = analytics.NewUserID()
		}
		return writeConsent(cmd, true, userID)
	},
}

var analyticsOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Opt out of usage reporting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		return writeConsent(cmd, false, cfg.Analytics.UserID)
	},
}

// writeConsent persists the consent flag (and the anonymous id on first
// opt-in) back to the config file.
func writeConsent(cmd *cobra.Command, enabled bool, userID string) error {
	viper.Set("analytics.enabled", enabled)
	if userID != "" {
		viper.Set("analytics.user_id", userID)
	}
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			err = viper.SafeWriteConfig()
		}
		if err != nil {
			return errors.Wrap(err, "writing config")
		}
	}
	state := "off"
	if enabled {
		state = "on"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "analytics: %s\n", state)
	return nil
}
