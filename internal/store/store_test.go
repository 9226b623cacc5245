package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestValidName(t *testing.T) {
	valid := []string{"web", "my-project", "a1", "rule-2-of-3"}
	invalid := []string{"", "My-Project", "-lead", "trail-", "has space", "../escape", "9start"}

	for _, name := range valid {
		assert.True(t, ValidName(name), "ValidName(%q)", name)
	}
	for _, name := range invalid {
		assert.False(t, ValidName(name), "ValidName(%q)", name)
	}
}

func TestProjectLifecycle(t *testing.T) {
	s := newTestStore(t)

	names, err := s.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, names, "fresh store should have no projects")

	p := &Project{
		Name:       "web-app",
		Directory:  "/work/web-app",
		Skills:     []string{"deploy", "review"},
		MCPServers: []string{"github"},
		Agents:     []string{"claude", "codex"},
	}
	require.NoError(t, s.SaveProject(p))
	assert.False(t, p.CreatedAt.IsZero(), "SaveProject should stamp CreatedAt")

	got, err := s.ReadProject("web-app")
	require.NoError(t, err)
	assert.Equal(t, p.Skills, got.Skills)
	assert.Equal(t, p.Agents, got.Agents)

	// Update preserves CreatedAt.
	created := got.CreatedAt
	got.Description = "the main app"
	require.NoError(t, s.SaveProject(got))
	again, err := s.ReadProject("web-app")
	require.NoError(t, err)
	assert.Equal(t, created, again.CreatedAt)
	assert.True(t, !again.UpdatedAt.Before(created))

	names, err = s.ListProjects()
	require.NoError(t, err)
	assert.Equal(t, []string{"web-app"}, names)

	require.NoError(t, s.DeleteProject("web-app"))
	_, err = s.ReadProject("web-app")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestSaveProject_RejectsBadNames(t *testing.T) {
	s := newTestStore(t)
	err := s.SaveProject(&Project{Name: "../evil"})
	assert.True(t, errors.Is(err, errors.ErrInvalidName))

	err = s.SaveProject(&Project{})
	assert.True(t, errors.Is(err, errors.ErrMissingName))
}

func TestDeleteProject_RemovesMemory(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveProject(&Project{Name: "web"}))

	memPath := filepath.Join(s.Root(), "memory", "web.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(memPath), 0o755))
	require.NoError(t, os.WriteFile(memPath, []byte("{}"), 0o644))

	require.NoError(t, s.DeleteProject("web"))
	_, err := os.Stat(memPath)
	assert.True(t, os.IsNotExist(err), "project memory should be deleted with the project")
}

func TestSkillLifecycle(t *testing.T) {
	s := newTestStore(t)

	skill := &Skill{
		Name:        "deploy",
		Description: "Deploys the app",
		Content:     "# Deploy\n\n1. Build\n2. Ship\n",
		Source:      &SkillSource{Repo: "community", ID: "deploy-v2"},
	}
	require.NoError(t, s.SaveSkill(skill))

	// The file is Markdown with frontmatter, readable by any editor.
	raw, err := os.ReadFile(filepath.Join(s.Root(), "skills", "deploy.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "---\n"))
	assert.Contains(t, string(raw), "source_repo: community")

	got, err := s.ReadSkill("deploy")
	require.NoError(t, err)
	assert.Equal(t, "Deploys the app", got.Description)
	assert.Equal(t, skill.Content, got.Content)
	require.NotNil(t, got.Source)
	assert.Equal(t, "deploy-v2", got.Source.ID)

	names, err := s.ListSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"deploy"}, names)

	require.NoError(t, s.DeleteSkill("deploy"))
	_, err = s.ReadSkill("deploy")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestReadSkill_NoFrontmatter(t *testing.T) {
	s := newTestStore(t)
	dir := filepath.Join(s.Root(), "skills")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bare.md"), []byte("# Bare skill\n"), 0o644))

	got, err := s.ReadSkill("bare")
	require.NoError(t, err)
	assert.Equal(t, "# Bare skill\n", got.Content)
	assert.Nil(t, got.Source)
}

func TestSkillPresence(t *testing.T) {
	claudeDir := t.TempDir()
	codexDir := t.TempDir()
	dirs := map[string]string{"claude": claudeDir, "codex": codexDir}

	inAgents, inClaude := SkillPresence("deploy", dirs)
	assert.False(t, inAgents)
	assert.False(t, inClaude)

	// Flat layout under codex.
	require.NoError(t, os.WriteFile(filepath.Join(codexDir, "deploy.md"), []byte("x"), 0o644))
	// Directory layout under claude.
	require.NoError(t, os.MkdirAll(filepath.Join(claudeDir, "deploy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, "deploy", "SKILL.md"), []byte("x"), 0o644))

	inAgents, inClaude = SkillPresence("deploy", dirs)
	assert.True(t, inAgents, "codex copy should set in_agents")
	assert.True(t, inClaude, "claude copy should set in_claude")
}

func TestReadSkill_PresenceUsesConfiguredDirs(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveSkill(&Skill{Name: "deploy", Content: "body"}))

	// No directories configured: flags are deterministically false,
	// whatever the host machine has installed.
	s.SetSkillDirs(map[string]string{})
	skill, err := s.ReadSkill("deploy")
	require.NoError(t, err)
	assert.False(t, skill.InAgents)
	assert.False(t, skill.InClaude)

	claudeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(claudeDir, "deploy.md"), []byte("x"), 0o644))
	s.SetSkillDirs(map[string]string{"claude": claudeDir})

	skill, err = s.ReadSkill("deploy")
	require.NoError(t, err)
	assert.True(t, skill.InClaude)
	assert.False(t, skill.InAgents)
}

func TestRuleLifecycle(t *testing.T) {
	s := newTestStore(t)

	r := &Rule{ID: "no-todos", Name: "No TODO comments", Content: "Never leave TODOs.\n"}
	require.NoError(t, s.SaveRule(r))

	got, err := s.ReadRule("no-todos")
	require.NoError(t, err)
	assert.Equal(t, "No TODO comments", got.Name)
	assert.Equal(t, r.Content, got.Content)

	ids, err := s.ListRules()
	require.NoError(t, err)
	assert.Equal(t, []string{"no-todos"}, ids)

	require.NoError(t, s.DeleteRule("no-todos"))
	_, err = s.ReadRule("no-todos")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestReadRule_DisplayNameFallsBackToID(t *testing.T) {
	s := newTestStore(t)
	dir := filepath.Join(s.Root(), "rules")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terse.md"), []byte("Be terse.\n"), 0o644))

	got, err := s.ReadRule("terse")
	require.NoError(t, err)
	assert.Equal(t, "terse", got.Name)
}

func TestTemplateLifecycle(t *testing.T) {
	s := newTestStore(t)

	tpl := &Template{Name: "go-service", Content: "# {{PROJECT}}\n\nGo service conventions.\n"}
	require.NoError(t, s.SaveTemplate(tpl))

	got, err := s.ReadTemplate("go-service")
	require.NoError(t, err)
	assert.Equal(t, tpl.Content, got.Content)

	names, err := s.ListTemplates()
	require.NoError(t, err)
	assert.Equal(t, []string{"go-service"}, names)

	require.NoError(t, s.DeleteTemplate("go-service"))
	_, err = s.ReadTemplate("go-service")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestMCPServerLifecycle(t *testing.T) {
	s := newTestStore(t)

	cfg := mcp.New("github")
	cfg.Command = "npx"
	cfg.Args = []string{"-y", "@modelcontextprotocol/server-github"}
	require.NoError(t, s.SaveMCPServer(cfg))

	// Persisted file stays minimal: no env/cwd/enabled keys.
	raw, err := os.ReadFile(filepath.Join(s.Root(), "mcp", "github.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "\"env\"")
	assert.NotContains(t, string(raw), "\"enabled\"")

	got, err := s.ReadMCPServer("github")
	require.NoError(t, err)
	assert.Equal(t, mcp.TypeStdio, got.Type)
	assert.True(t, got.Enabled)
	assert.NotNil(t, got.Env, "normalized read must fill collections")

	names, err := s.ListMCPServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, names)

	require.NoError(t, s.DeleteMCPServer("github"))
	_, err = s.ReadMCPServer("github")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestDeleteMissingEntities(t *testing.T) {
	s := newTestStore(t)
	assert.True(t, errors.Is(s.DeleteSkill("ghost"), errors.ErrNotFound))
	assert.True(t, errors.Is(s.DeleteRule("ghost"), errors.ErrNotFound))
	assert.True(t, errors.Is(s.DeleteTemplate("ghost"), errors.ErrNotFound))
	assert.True(t, errors.Is(s.DeleteMCPServer("ghost"), errors.ErrNotFound))
	assert.True(t, errors.Is(s.DeleteProject("ghost"), errors.ErrNotFound))
}
