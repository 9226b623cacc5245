package commands

import (
	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/bridge"
	"agentdeck/internal/logging"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:7465",
		"address to listen on (loopback only)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the command bridge over localhost HTTP",
	Long: `Serve exposes every backend command as POST /rpc on a loopback
address. The desktop shell talks to this endpoint; the CLI subcommands
run the same handlers in-process.`,
	Example: `  # Default address
  agentdeck serve

  # Custom port
  agentdeck serve --addr 127.0.0.1:9100`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logging.FromContext(cmd.Context())
		a, err := app.Load(log)
		if err != nil {
			return err
		}
		return bridge.NewServer(a.Bridge, log).ListenAndServe(cmd.Context(), serveAddr)
	},
}
