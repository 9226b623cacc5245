// Package commands implements the CLI commands for agentdeck.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"agentdeck/cmd/agentdeck/commands/flags"
	"agentdeck/cmd/agentdeck/commands/market"
	"agentdeck/cmd/agentdeck/commands/mcp"
	memorycmd "agentdeck/cmd/agentdeck/commands/memory"
	"agentdeck/cmd/agentdeck/commands/project"
	"agentdeck/cmd/agentdeck/commands/rule"
	"agentdeck/cmd/agentdeck/commands/skill"
	"agentdeck/cmd/agentdeck/commands/template"
	"agentdeck/internal/config"
	"agentdeck/internal/errors"
	"agentdeck/internal/logging"
	"agentdeck/internal/paths"
)

// version is overridden at build time via ldflags.
var version = "0.1.0"

var (
	verbosity int
	quiet     bool
	logFormat string
	logFile   string

	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	flags.Register(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("agentdeck version {{.Version}}\n")

	// Errors are reported once, by main.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(project.Cmd)
	rootCmd.AddCommand(skill.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(rule.Cmd)
	rootCmd.AddCommand(template.Cmd)
	rootCmd.AddCommand(memorycmd.Cmd)
	rootCmd.AddCommand(market.Cmd)
}

func initConfig() {
	config.Init()
	_, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "agentdeck",
	Short: "Manage AI coding agent configurations from one place",
	Long: `agentdeck manages the configuration surface of AI coding agents:
projects, reusable skills, MCP server configs, rules, templates, and
per-project memory, synced into the native config files of Claude Code,
Codex CLI, Gemini CLI, and OpenCode.

Define everything once in agentdeck's store and sync it out. Use the
--agent flag to target specific agents, or omit it to use the
configured defaults.`,
	Example: `  # List projects
  agentdeck project list

  # Sync a project into its agents' config files
  agentdeck project sync web-app

  # Browse a project's memory
  agentdeck memory browse -p web-app --sort date

  # Serve the command bridge for the desktop shell
  agentdeck serve`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateAgentFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("AGENTDECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primary}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// validateAgentFlag checks the --agent values before any command runs.
func validateAgentFlag(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	var invalid []string
	for _, id := range flags.GetAgentFlag() {
		if !paths.ValidAgent(strings.ToLower(strings.TrimSpace(id))) {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		err := errors.Newf("invalid agent(s): %s (valid: %s)",
			strings.Join(invalid, ", "), strings.Join(paths.Agents(), ", "))
		return errors.NewUserError(err, "Run 'agentdeck --help' to see valid agents")
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
