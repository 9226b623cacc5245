// Package paths centralizes filesystem path resolution: the XDG base
// directories agentdeck stores its own data in, and the native config
// locations of every supported coding agent.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"agentdeck/internal/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "agentdeck"

// Agent identifiers for supported AI coding agents.
const (
	AgentClaude   = "claude"
	AgentCodex    = "codex"
	AgentGemini   = "gemini"
	AgentOpenCode = "opencode"
)

// agentGlobalConfigs maps agent ids to their global config directories,
// relative to the user's home directory.
var agentGlobalConfigs = map[string]string{
	AgentClaude:   ".claude",
	AgentCodex:    ".codex",
	AgentGemini:   ".gemini",
	AgentOpenCode: ".config/opencode",
}

// agentProjectFiles maps agent ids to their project instruction file names.
var agentProjectFiles = map[string]string{
	AgentClaude:   "CLAUDE.md",
	AgentCodex:    "AGENTS.md",
	AgentGemini:   "GEMINI.md",
	AgentOpenCode: "AGENTS.md",
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrUnknownAgent indicates an agent id with no registered path mapping.
	ErrUnknownAgent = errors.New("unknown agent")
)

// DefaultDirPerm is the permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any parents. If perm is 0,
// DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or "" when it cannot be resolved.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory or ErrHomeDirNotFound.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// StateHome returns the XDG state home directory.
func StateHome() string {
	return xdg.StateHome
}

// StoreDir returns the root of agentdeck's entity store:
// <DataHome>/agentdeck/. Projects, skills, rules, templates, MCP configs,
// and per-project memory all live under it.
func StoreDir() string {
	return filepath.Join(DataHome(), AppName)
}

// SessionPath returns the path of the persisted UI session state
// (last-selected entities): <StateHome>/agentdeck/session.json.
func SessionPath() string {
	return filepath.Join(StateHome(), AppName, "session.json")
}

// BackupDir returns the directory holding pre-sync snapshots of agent
// config files: <StateHome>/agentdeck/backups/.
func BackupDir() string {
	return filepath.Join(StateHome(), AppName, "backups")
}

// ValidAgent reports whether the agent id is recognized.
func ValidAgent(id string) bool {
	_, ok := agentGlobalConfigs[id]
	return ok
}

// Agents returns all supported agent ids in deterministic order.
func Agents() []string {
	return []string{AgentClaude, AgentCodex, AgentGemini, AgentOpenCode}
}

// AgentConfigDir returns the global config directory for an agent
// (e.g. ~/.claude for claude). Returns "" for unknown agents.
func AgentConfigDir(id string) string {
	rel, ok := agentGlobalConfigs[id]
	if !ok {
		return ""
	}
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, rel)
}

// AgentSkillDir returns the skills directory for an agent:
// <AgentConfigDir>/skills/. Returns "" for unknown agents.
func AgentSkillDir(id string) string {
	dir := AgentConfigDir(id)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "skills")
}

// ProjectFile returns the project instruction file name for an agent
// (CLAUDE.md, AGENTS.md, GEMINI.md). Returns "" for unknown agents.
func ProjectFile(id string) string {
	return agentProjectFiles[id]
}

// ProjectInstructionsPath returns the absolute instruction file path inside
// a project directory. Returns "" for unknown agents or empty roots.
func ProjectInstructionsPath(id, projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	name, ok := agentProjectFiles[id]
	if !ok {
		return ""
	}
	return filepath.Join(projectRoot, name)
}

// AgentMCPConfigPath returns the MCP config file an agent reads.
//
//   - claude: ~/.claude.json (project-scoped configs use <project>/.mcp.json)
//   - codex: ~/.codex/config.toml
//   - gemini: ~/.gemini/settings.json
//   - opencode: ~/.config/opencode/opencode.json
//
// Returns "" for unknown agents.
func AgentMCPConfigPath(id string) string {
	home := Home()
	if home == "" {
		return ""
	}
	switch id {
	case AgentClaude:
		// Claude keeps user-level MCP servers in ~/.claude.json, not
		// inside the .claude directory.
		return filepath.Join(home, ".claude.json")
	case AgentCodex:
		return filepath.Join(AgentConfigDir(id), "config.toml")
	case AgentGemini:
		return filepath.Join(AgentConfigDir(id), "settings.json")
	case AgentOpenCode:
		return filepath.Join(AgentConfigDir(id), "opencode.json")
	}
	return ""
}
