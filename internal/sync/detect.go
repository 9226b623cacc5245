package sync

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"agentdeck/internal/errors"
	"agentdeck/internal/paths"
	"agentdeck/pkg/fileutil"
)

// Detection is what Autodetect inferred from a project directory.
type Detection struct {
	Agents     []string `json:"agents"`
	MCPServers []string `json:"mcp_servers"`
	Skills     []string `json:"skills"`
}

// agentMarkers maps each agent to the files or directories whose
// presence in a project implies the agent is in use. AGENTS.md is
// attributed to codex; opencode is detected by its own artifacts only,
// since the shared file cannot distinguish the two.
var agentMarkers = map[string][]string{
	paths.AgentClaude:   {".claude", "CLAUDE.md", ".mcp.json"},
	paths.AgentCodex:    {".codex", "AGENTS.md"},
	paths.AgentGemini:   {".gemini", "GEMINI.md"},
	paths.AgentOpenCode: {".opencode", "opencode.json"},
}

// Autodetect scans a project directory for agent artifacts and infers
// which agents, MCP servers, and skills the project already uses.
func Autodetect(dir string) (*Detection, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf("%s is not a directory", dir)
	}

	d := &Detection{
		Agents:     []string{},
		MCPServers: []string{},
		Skills:     []string{},
	}

	for _, id := range paths.Agents() {
		for _, marker := range agentMarkers[id] {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				d.Agents = append(d.Agents, id)
				break
			}
		}
	}

	d.MCPServers = detectMCPServers(filepath.Join(dir, ".mcp.json"))
	d.Skills = detectSkills(filepath.Join(dir, ".claude", "skills"))
	return d, nil
}

// detectMCPServers reads server names out of a project-scoped
// .mcp.json. Unreadable or malformed files detect nothing.
func detectMCPServers(path string) []string {
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		return []string{}
	}
	var root struct {
		Servers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &root); err != nil {
		return []string{}
	}
	names := make([]string, 0, len(root.Servers))
	for name := range root.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// detectSkills lists skill names under a project's .claude/skills,
// accepting both the flat and directory layouts.
func detectSkills(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			if _, err := os.Stat(filepath.Join(dir, name, "SKILL.md")); err == nil {
				names = append(names, name)
			}
		case strings.HasSuffix(name, ".md"):
			names = append(names, strings.TrimSuffix(name, ".md"))
		}
	}
	sort.Strings(names)
	return names
}
