// Package cli holds helpers shared by the command tree: agent flag
// resolution and display formatting that more than one command needs.
package cli

import (
	"strings"

	"agentdeck/internal/agent"
	"agentdeck/internal/errors"
	"agentdeck/internal/paths"
)

// ResolveAgents turns the --agent flag values into a validated agent
// list. Empty flags fall back to the configured defaults, then to the
// full catalog.
func ResolveAgents(flags, defaults []string) ([]string, error) {
	ids := flags
	if len(ids) == 0 {
		ids = defaults
	}
	if len(ids) == 0 {
		return paths.Agents(), nil
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if !paths.ValidAgent(id) {
			return nil, errors.WithDetailf(paths.ErrUnknownAgent,
				"agent %q (valid: %s)", id, strings.Join(paths.Agents(), ", "))
		}
		out = append(out, id)
	}
	return out, nil
}

// AgentLabel returns the display name for an agent id, falling back to
// the id itself.
func AgentLabel(id string) string {
	info, err := agent.Get(id)
	if err != nil {
		return id
	}
	return info.Label
}
