// Package flags holds persistent flag state shared between the root
// command and the entity subcommand packages, avoiding an import cycle.
package flags

import "github.com/spf13/pflag"

var agentFlag []string

// Register adds the shared persistent flags to a flag set.
func Register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&agentFlag, "agent", "a", nil,
		"target agent(s): claude, codex, gemini, opencode (default: configured defaults)")
}

// GetAgentFlag returns the current --agent values.
func GetAgentFlag() []string {
	return agentFlag
}

// SetAgentFlag overrides the --agent values programmatically.
func SetAgentFlag(agents []string) {
	agentFlag = agents
}
