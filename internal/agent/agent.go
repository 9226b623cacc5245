// Package agent defines the catalog of supported coding agents and the
// adapters that translate canonical configuration into each agent's
// native files. The catalog is static: agents are not user-created.
package agent

import (
	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
)

// Info describes one supported agent.
type Info struct {
	// ID is the stable identifier used everywhere in the store.
	ID string `json:"id"`
	// Label is the human-readable name.
	Label string `json:"label"`
	// Description names the agent's global config location.
	Description string `json:"description"`
	// ProjectFile is the instruction file the agent reads in a project
	// directory.
	ProjectFile string `json:"project_file"`
	// SupportsSkills reports whether the agent has a skill directory.
	SupportsSkills bool `json:"supports_skills"`
	// SupportsMCP reports whether the agent consumes MCP server configs.
	SupportsMCP bool `json:"supports_mcp"`
	// MCPNote carries a caveat about the agent's MCP support, if any.
	MCPNote string `json:"mcp_note,omitempty"`
}

// Adapter writes canonical data into one agent's native config format.
type Adapter interface {
	// ID returns the agent identifier the adapter serves.
	ID() string

	// ApplyMCP merges server entries into the agent's MCP config file at
	// path: entries in upsert are added or replaced, names in retract are
	// removed, and everything else in the file is preserved. A missing
	// file is created.
	ApplyMCP(path string, upsert map[string]*mcp.ServerConfig, retract []string) error

	// ListMCP returns the server names present in the agent's MCP config
	// file, sorted. A missing file yields an empty list.
	ListMCP(path string) ([]string, error)
}

var catalog = []Info{
	{
		ID:             paths.AgentClaude,
		Label:          "Claude Code",
		Description:    "~/.claude",
		ProjectFile:    "CLAUDE.md",
		SupportsSkills: true,
		SupportsMCP:    true,
	},
	{
		ID:             paths.AgentCodex,
		Label:          "Codex CLI",
		Description:    "~/.codex",
		ProjectFile:    "AGENTS.md",
		SupportsSkills: true,
		SupportsMCP:    true,
		MCPNote:        "stdio servers only; remote entries are written but may be ignored",
	},
	{
		ID:             paths.AgentGemini,
		Label:          "Gemini CLI",
		Description:    "~/.gemini",
		ProjectFile:    "GEMINI.md",
		SupportsSkills: true,
		SupportsMCP:    true,
	},
	{
		ID:             paths.AgentOpenCode,
		Label:          "OpenCode",
		Description:    "~/.config/opencode",
		ProjectFile:    "AGENTS.md",
		SupportsSkills: true,
		SupportsMCP:    true,
	},
}

var adapters = map[string]Adapter{
	paths.AgentClaude:   &Claude{},
	paths.AgentCodex:    &Codex{},
	paths.AgentGemini:   &Gemini{},
	paths.AgentOpenCode: &OpenCode{},
}

// Catalog returns all supported agents in stable order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the catalog entry for id.
func Get(id string) (Info, error) {
	for _, info := range catalog {
		if info.ID == id {
			return info, nil
		}
	}
	return Info{}, errors.WithDetailf(paths.ErrUnknownAgent, "agent %q", id)
}

// AdapterFor returns the config adapter for id.
func AdapterFor(id string) (Adapter, error) {
	a, ok := adapters[id]
	if !ok {
		return nil, errors.WithDetailf(paths.ErrUnknownAgent, "agent %q", id)
	}
	return a, nil
}
