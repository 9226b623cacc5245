// Package sync reconciles a project's declared skills, MCP servers, and
// agents against each agent's native config files. Sync merges at the
// entry level: it owns only the entries it wrote, tracked per project,
// and never touches foreign entries or unrelated settings.
package sync

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"agentdeck/internal/agent"
	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
	"agentdeck/internal/store"
	"agentdeck/pkg/fileutil"
	"agentdeck/pkg/frontmatter"
)

// Targets resolves where agent files live. Override in tests; use
// DefaultTargets for the real machine.
type Targets struct {
	// MCPConfigPath returns the MCP config file for an agent.
	MCPConfigPath func(agentID string) string
	// SkillDir returns the skills directory for an agent.
	SkillDir func(agentID string) string
	// Instructions returns the instruction file path inside a project
	// directory for an agent.
	Instructions func(agentID, projectRoot string) string
	// BackupDir receives pre-write snapshots of agent config files.
	// Empty disables backups.
	BackupDir string
}

// DefaultTargets returns the real agent file locations.
func DefaultTargets() Targets {
	return Targets{
		MCPConfigPath: paths.AgentMCPConfigPath,
		SkillDir:      paths.AgentSkillDir,
		Instructions:  paths.ProjectInstructionsPath,
		BackupDir:     paths.BackupDir(),
	}
}

// AgentResult reports what one agent received during a sync.
type AgentResult struct {
	Agent string `json:"agent"`
	// Upserted are the MCP server names written into the agent config.
	Upserted []string `json:"upserted,omitempty"`
	// Removed are previously managed names retracted from it.
	Removed []string `json:"removed,omitempty"`
	// Skills are the skill names copied into the agent's skill dir.
	Skills []string `json:"skills,omitempty"`
	// Instructions is the instruction file written, empty when it
	// already existed or the project has no directory.
	Instructions string `json:"instructions,omitempty"`
}

// Result reports the outcome of a project sync.
type Result struct {
	Project string        `json:"project"`
	Agents  []AgentResult `json:"agents"`
	// Skipped lists referenced entities that no longer exist. Soft
	// references are not an error; they are reported and skipped.
	Skipped []string `json:"skipped,omitempty"`
}

// Syncer drives sync operations against one store.
type Syncer struct {
	store   *store.Store
	targets Targets
	log     *slog.Logger
}

// New creates a Syncer.
func New(st *store.Store, targets Targets, log *slog.Logger) *Syncer {
	return &Syncer{store: st, targets: targets, log: log}
}

// SyncProject pushes a project's selected MCP servers and skills into
// every agent the project targets, retracting entries this project
// previously managed but no longer selects. The project's bookkeeping
// is updated and saved on success.
func (s *Syncer) SyncProject(name string) (*Result, error) {
	p, err := s.store.ReadProject(name)
	if err != nil {
		return nil, err
	}

	res := &Result{Project: name}

	servers := make(map[string]*mcp.ServerConfig, len(p.MCPServers))
	for _, serverName := range p.MCPServers {
		cfg, err := s.store.ReadMCPServer(serverName)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				s.log.Warn("referenced MCP server missing, skipping", "project", name, "server", serverName)
				res.Skipped = append(res.Skipped, "mcp:"+serverName)
				continue
			}
			return nil, err
		}
		if cfg.Enabled {
			servers[serverName] = cfg
		}
	}

	skills := make([]*store.Skill, 0, len(p.Skills))
	for _, skillName := range p.Skills {
		sk, err := s.store.ReadSkill(skillName)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				s.log.Warn("referenced skill missing, skipping", "project", name, "skill", skillName)
				res.Skipped = append(res.Skipped, "skill:"+skillName)
				continue
			}
			return nil, err
		}
		skills = append(skills, sk)
	}

	if p.Managed == nil {
		p.Managed = make(map[string][]string)
	}

	for _, agentID := range p.Agents {
		ar, err := s.syncAgent(p, agentID, servers, skills)
		if err != nil {
			return nil, errors.Wrapf(err, "syncing project %q to agent %q", name, agentID)
		}
		res.Agents = append(res.Agents, *ar)
		p.Managed[agentID] = sortedNames(servers)
	}

	if err := s.store.SaveProject(p); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Syncer) syncAgent(p *store.Project, agentID string, servers map[string]*mcp.ServerConfig, skills []*store.Skill) (*AgentResult, error) {
	adapter, err := agent.AdapterFor(agentID)
	if err != nil {
		return nil, err
	}

	ar := &AgentResult{Agent: agentID}

	cfgPath := s.targets.MCPConfigPath(agentID)
	if cfgPath != "" {
		retract := retractable(p.Managed[agentID], servers)
		if len(servers) > 0 || len(retract) > 0 {
			if _, err := Snapshot(s.targets.BackupDir, cfgPath); err != nil {
				return nil, err
			}
			if err := adapter.ApplyMCP(cfgPath, servers, retract); err != nil {
				return nil, err
			}
			ar.Upserted = sortedNames(servers)
			ar.Removed = retract
		}
	}

	if dir := s.targets.SkillDir(agentID); dir != "" {
		for _, sk := range skills {
			if err := writeSkill(dir, agentID, sk); err != nil {
				return nil, err
			}
			ar.Skills = append(ar.Skills, sk.Name)
		}
		sort.Strings(ar.Skills)
	}

	if path := s.targets.Instructions(agentID, p.Directory); path != "" {
		wrote, err := writeInstructions(path, p)
		if err != nil {
			return nil, err
		}
		if wrote {
			ar.Instructions = path
		}
	}

	return ar, nil
}

// SyncSkill copies one skill into the skill directories of the given
// agents (all agents when none are given).
func (s *Syncer) SyncSkill(name string, agents []string) error {
	sk, err := s.store.ReadSkill(name)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		agents = paths.Agents()
	}
	for _, agentID := range agents {
		if !paths.ValidAgent(agentID) {
			return errors.WithDetailf(paths.ErrUnknownAgent, "agent %q", agentID)
		}
		dir := s.targets.SkillDir(agentID)
		if dir == "" {
			continue
		}
		if err := writeSkill(dir, agentID, sk); err != nil {
			return errors.Wrapf(err, "syncing skill %q to agent %q", name, agentID)
		}
	}
	return nil
}

// SyncAllSkills copies every stored skill into every agent's skill
// directory and returns the synced names.
func (s *Syncer) SyncAllSkills() ([]string, error) {
	names, err := s.store.ListSkills()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := s.SyncSkill(name, nil); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// writeSkill renders a skill into an agent's skill directory. Claude
// uses the <name>/SKILL.md directory layout; everyone else takes a flat
// <name>.md file.
func writeSkill(dir, agentID string, sk *store.Skill) error {
	matter := struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description,omitempty"`
	}{Name: sk.Name, Description: sk.Description}

	doc, err := frontmatter.Format(matter, sk.Content)
	if err != nil {
		return errors.Wrapf(err, "formatting skill %q", sk.Name)
	}

	path := filepath.Join(dir, sk.Name+".md")
	if agentID == paths.AgentClaude {
		path = filepath.Join(dir, sk.Name, "SKILL.md")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating skill directory")
	}
	return fileutil.WriteAtomic(path, doc, 0o644)
}

// writeInstructions creates the agent instruction file for a project.
// An existing file is never overwritten: once the user has one, edits
// belong to them.
func writeInstructions(path string, p *store.Project) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "checking %s", path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	if len(p.Skills) > 0 {
		b.WriteString("\n## Skills\n\n")
		for _, name := range p.Skills {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, errors.Wrap(err, "creating project directory")
	}
	if err := fileutil.WriteAtomic(path, []byte(b.String()), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// retractable returns previously managed names no longer selected.
func retractable(managed []string, selected map[string]*mcp.ServerConfig) []string {
	var out []string
	for _, name := range managed {
		if _, ok := selected[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func sortedNames(m map[string]*mcp.ServerConfig) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
