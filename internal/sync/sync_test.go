package sync

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/logging"
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
	"agentdeck/internal/store"
)

// testTargets routes every agent file into a temp dir.
func testTargets(t *testing.T) Targets {
	t.Helper()
	root := t.TempDir()
	return Targets{
		MCPConfigPath: func(id string) string {
			return filepath.Join(root, id+"-config.json")
		},
		SkillDir: func(id string) string {
			return filepath.Join(root, id, "skills")
		},
		Instructions: paths.ProjectInstructionsPath,
		BackupDir:    filepath.Join(root, "backups"),
	}
}

func newSyncer(t *testing.T) (*Syncer, *store.Store, Targets) {
	t.Helper()
	st := store.New(t.TempDir())
	targets := testTargets(t)
	return New(st, targets, logging.ForTest(t)), st, targets
}

func seedServer(t *testing.T, st *store.Store, name string) {
	t.Helper()
	cfg := mcp.New(name)
	cfg.Command = "npx"
	cfg.Args = []string{"-y", name}
	require.NoError(t, st.SaveMCPServer(cfg))
}

func readServers(t *testing.T, path, key string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))
	servers, _ := root[key].(map[string]any)
	return servers
}

func TestSyncProject(t *testing.T) {
	s, st, targets := newSyncer(t)

	seedServer(t, st, "github")
	require.NoError(t, st.SaveSkill(&store.Skill{
		Name:    "deploy",
		Content: "# Deploy\n",
	}))

	projectDir := t.TempDir()
	require.NoError(t, st.SaveProject(&store.Project{
		Name:       "web",
		Directory:  projectDir,
		Skills:     []string{"deploy"},
		MCPServers: []string{"github"},
		Agents:     []string{paths.AgentClaude, paths.AgentGemini},
	}))

	res, err := s.SyncProject("web")
	require.NoError(t, err)
	require.Len(t, res.Agents, 2)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, []string{"github"}, res.Agents[0].Upserted)

	// MCP entries landed in both agent configs.
	claude := readServers(t, targets.MCPConfigPath(paths.AgentClaude), "mcpServers")
	assert.Contains(t, claude, "github")
	gemini := readServers(t, targets.MCPConfigPath(paths.AgentGemini), "mcpServers")
	assert.Contains(t, gemini, "github")

	// Skills landed in each agent's layout.
	assert.FileExists(t, filepath.Join(targets.SkillDir(paths.AgentClaude), "deploy", "SKILL.md"))
	assert.FileExists(t, filepath.Join(targets.SkillDir(paths.AgentGemini), "deploy.md"))

	// Instruction files written once per agent file name.
	assert.FileExists(t, filepath.Join(projectDir, "CLAUDE.md"))
	assert.FileExists(t, filepath.Join(projectDir, "GEMINI.md"))

	// Bookkeeping recorded per agent.
	p, err := st.ReadProject("web")
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, p.Managed[paths.AgentClaude])
}

func TestSyncProject_RetractsDeselected(t *testing.T) {
	s, st, targets := newSyncer(t)

	seedServer(t, st, "github")
	seedServer(t, st, "search")
	require.NoError(t, st.SaveProject(&store.Project{
		Name:       "web",
		MCPServers: []string{"github", "search"},
		Agents:     []string{paths.AgentClaude},
	}))

	_, err := s.SyncProject("web")
	require.NoError(t, err)

	// Deselect one server, keep the other, and sync again.
	p, err := st.ReadProject("web")
	require.NoError(t, err)
	p.MCPServers = []string{"github"}
	require.NoError(t, st.SaveProject(p))

	res, err := s.SyncProject("web")
	require.NoError(t, err)
	assert.Equal(t, []string{"search"}, res.Agents[0].Removed)

	servers := readServers(t, targets.MCPConfigPath(paths.AgentClaude), "mcpServers")
	assert.Contains(t, servers, "github")
	assert.NotContains(t, servers, "search")
}

func TestSyncProject_PreservesForeignEntries(t *testing.T) {
	s, st, targets := newSyncer(t)

	seedServer(t, st, "github")
	require.NoError(t, st.SaveProject(&store.Project{
		Name:       "web",
		MCPServers: []string{"github"},
		Agents:     []string{paths.AgentClaude},
	}))

	// A server the user configured by hand, never managed by us.
	path := targets.MCPConfigPath(paths.AgentClaude)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"mcpServers":{"hand-rolled":{"command":"x"}},"theme":"dark"}`), 0o644))

	_, err := s.SyncProject("web")
	require.NoError(t, err)

	servers := readServers(t, path, "mcpServers")
	assert.Contains(t, servers, "hand-rolled", "foreign entries must survive sync")
	assert.Contains(t, servers, "github")
}

func TestSyncProject_InstructionsNeverClobbered(t *testing.T) {
	s, st, _ := newSyncer(t)

	projectDir := t.TempDir()
	instructions := filepath.Join(projectDir, "CLAUDE.md")
	require.NoError(t, os.WriteFile(instructions, []byte("my own notes\n"), 0o644))

	require.NoError(t, st.SaveProject(&store.Project{
		Name:      "web",
		Directory: projectDir,
		Agents:    []string{paths.AgentClaude},
	}))

	res, err := s.SyncProject("web")
	require.NoError(t, err)
	assert.Empty(t, res.Agents[0].Instructions)

	data, err := os.ReadFile(instructions)
	require.NoError(t, err)
	assert.Equal(t, "my own notes\n", string(data))
}

func TestSyncProject_SkipsDanglingReferences(t *testing.T) {
	s, st, _ := newSyncer(t)

	require.NoError(t, st.SaveProject(&store.Project{
		Name:       "web",
		Skills:     []string{"gone-skill"},
		MCPServers: []string{"gone-server"},
		Agents:     []string{paths.AgentClaude},
	}))

	res, err := s.SyncProject("web")
	require.NoError(t, err, "dangling soft references are not an error")
	assert.ElementsMatch(t, []string{"mcp:gone-server", "skill:gone-skill"}, res.Skipped)
}

func TestSyncSkill(t *testing.T) {
	s, st, targets := newSyncer(t)

	require.NoError(t, st.SaveSkill(&store.Skill{
		Name:        "review",
		Description: "Code review checklist",
		Content:     "# Review\n",
	}))

	require.NoError(t, s.SyncSkill("review", nil))
	for _, id := range paths.Agents() {
		if id == paths.AgentClaude {
			assert.FileExists(t, filepath.Join(targets.SkillDir(id), "review", "SKILL.md"))
		} else {
			assert.FileExists(t, filepath.Join(targets.SkillDir(id), "review.md"))
		}
	}

	// Synced documents carry the frontmatter header.
	data, err := os.ReadFile(filepath.Join(targets.SkillDir(paths.AgentCodex), "review.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "description: Code review checklist")

	err = s.SyncSkill("review", []string{"not-an-agent"})
	assert.Error(t, err)
}

func TestSyncAllSkills(t *testing.T) {
	s, st, targets := newSyncer(t)

	require.NoError(t, st.SaveSkill(&store.Skill{Name: "a", Content: "A\n"}))
	require.NoError(t, st.SaveSkill(&store.Skill{Name: "b", Content: "B\n"}))

	names, err := s.SyncAllSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.FileExists(t, filepath.Join(targets.SkillDir(paths.AgentGemini), "a.md"))
	assert.FileExists(t, filepath.Join(targets.SkillDir(paths.AgentGemini), "b.md"))
}
