package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/logging"
	"agentdeck/internal/marketplace"
	"agentdeck/internal/memory"
	"agentdeck/internal/paths"
	"agentdeck/internal/store"
	"agentdeck/internal/sync"
)

func newTestBridge(t *testing.T) *Bridge {
	t.Helper()
	root := t.TempDir()
	st := store.New(root)
	log := logging.ForTest(t)

	agentRoot := t.TempDir()
	targets := sync.Targets{
		MCPConfigPath: func(id string) string { return filepath.Join(agentRoot, id+".json") },
		SkillDir:      func(id string) string { return filepath.Join(agentRoot, id, "skills") },
		Instructions:  paths.ProjectInstructionsPath,
	}
	skillDirs := make(map[string]string)
	for _, id := range paths.Agents() {
		skillDirs[id] = targets.SkillDir(id)
	}
	st.SetSkillDirs(skillDirs)

	return New(Deps{
		Store:     st,
		Memory:    memory.NewStore(filepath.Join(root, "memory")),
		Syncer:    sync.New(st, targets, log),
		Market:    marketplace.NewClient("", log),
		Installer: marketplace.NewInstaller(st),
		Log:       log,
	})
}

func dispatch(t *testing.T, b *Bridge, command string, args any) json.RawMessage {
	t.Helper()
	var raw json.RawMessage
	if args != nil {
		var err error
		raw, err = json.Marshal(args)
		require.NoError(t, err)
	}
	data, err := b.Dispatch(context.Background(), command, raw)
	require.NoError(t, err, command)
	return data
}

func TestDispatch_UnknownCommand(t *testing.T) {
	b := newTestBridge(t)
	_, err := b.Dispatch(context.Background(), "no_such_command", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommands_CoverObservedSurface(t *testing.T) {
	b := newTestBridge(t)
	commands := b.Commands()
	have := make(map[string]bool, len(commands))
	for _, name := range commands {
		have[name] = true
	}

	for _, name := range []string{
		"list_agents", "list_agents_with_projects",
		"get_projects", "read_project", "save_project", "delete_project",
		"autodetect_project_dependencies", "sync_project",
		"get_skills", "read_skill", "save_skill", "delete_skill",
		"sync_skill", "sync_all_skills",
		"list_mcp_server_configs", "read_mcp_server_config",
		"save_mcp_server_config", "delete_mcp_server_config",
		"get_rules", "read_rule", "save_rule", "delete_rule",
		"get_templates", "read_template", "save_template", "delete_template",
		"list_mcp_marketplace", "search_mcp_marketplace", "install_mcp_marketplace_entry",
		"list_bundled_project_templates", "search_bundled_project_templates",
		"import_bundled_project_template", "get_project_templates",
		"store_memory", "delete_memory", "clear_memories",
	} {
		assert.True(t, have[name], "missing command %s", name)
	}
}

func TestProjectCommands(t *testing.T) {
	b := newTestBridge(t)

	data := dispatch(t, b, "save_project", map[string]any{
		"project": map[string]any{"name": "web", "description": "the app"},
	})
	var saved store.Project
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.False(t, saved.CreatedAt.IsZero())

	data = dispatch(t, b, "get_projects", nil)
	var names []string
	require.NoError(t, json.Unmarshal(data, &names))
	assert.Equal(t, []string{"web"}, names)

	data = dispatch(t, b, "read_project", map[string]string{"name": "web"})
	var p store.Project
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, "the app", p.Description)

	dispatch(t, b, "delete_project", map[string]string{"name": "web"})
	_, err := b.Dispatch(context.Background(), "read_project",
		json.RawMessage(`{"name":"web"}`))
	assert.Error(t, err)
}

func TestListAgentsWithProjects(t *testing.T) {
	b := newTestBridge(t)

	dispatch(t, b, "save_project", map[string]any{
		"project": map[string]any{"name": "web", "agents": []string{paths.AgentClaude}},
	})

	data := dispatch(t, b, "list_agents_with_projects", nil)
	var agents []struct {
		ID       string   `json:"id"`
		Projects []string `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(data, &agents))
	require.Len(t, agents, 4)
	assert.Equal(t, []string{"web"}, agents[0].Projects)
	assert.Empty(t, agents[1].Projects)
}

func TestMCPServerCommands_RoundTrip(t *testing.T) {
	b := newTestBridge(t)

	body := `{"type":"stdio","command":"npx","args":["-y","foo"]}`
	data := dispatch(t, b, "save_mcp_server_config", map[string]any{
		"name":   "github",
		"config": json.RawMessage(body),
	})
	var payload struct {
		Name   string          `json:"name"`
		Config json.RawMessage `json:"config"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "github", payload.Name)

	// Cleaned body has exactly the fields that were set.
	var cfg map[string]any
	require.NoError(t, json.Unmarshal(payload.Config, &cfg))
	assert.Len(t, cfg, 3)
	assert.Equal(t, "stdio", cfg["type"])

	data = dispatch(t, b, "read_mcp_server_config", map[string]string{"name": "github"})
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.JSONEq(t, body, string(payload.Config))
}

func TestSyncProjectCommand(t *testing.T) {
	b := newTestBridge(t)

	dispatch(t, b, "save_mcp_server_config", map[string]any{
		"name":   "github",
		"config": json.RawMessage(`{"command":"npx"}`),
	})
	dispatch(t, b, "save_project", map[string]any{
		"project": map[string]any{
			"name":        "web",
			"mcp_servers": []string{"github"},
			"agents":      []string{paths.AgentClaude},
		},
	})

	data := dispatch(t, b, "sync_project", map[string]string{"name": "web"})
	var res sync.Result
	require.NoError(t, json.Unmarshal(data, &res))
	require.Len(t, res.Agents, 1)
	assert.Equal(t, []string{"github"}, res.Agents[0].Upserted)
}

func TestMarketplaceCommands(t *testing.T) {
	b := newTestBridge(t)

	// Tag-only match comes through the local fallback filter.
	data := dispatch(t, b, "search_skill_marketplace", map[string]string{"query": "checklist"})
	var entries []struct {
		marketplace.Entry
		Installed bool `json:"installed"`
	}
	require.NoError(t, json.Unmarshal(data, &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "code-review", entries[0].Name)
	assert.False(t, entries[0].Installed)

	dispatch(t, b, "install_skill_marketplace_entry", map[string]any{
		"id": entries[0].ID,
	})

	data = dispatch(t, b, "search_skill_marketplace", map[string]string{"query": "checklist"})
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.True(t, entries[0].Installed, "installed state must be reflected")

	// Installing an MCP entry without its credentials fails.
	_, err := b.Dispatch(context.Background(), "install_mcp_marketplace_entry",
		json.RawMessage(`{"id":"community/github"}`))
	assert.Error(t, err)
}

func TestMemoryCommands(t *testing.T) {
	b := newTestBridge(t)

	for i := 0; i < 3; i++ {
		dispatch(t, b, "store_memory", map[string]string{
			"project": "web",
			"key":     fmt.Sprintf("fact-%d", i),
			"value":   "value",
			"source":  "chat",
		})
	}

	data := dispatch(t, b, "browse_memories", map[string]any{"project": "web"})
	var page memory.Page
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 3, page.Total)

	dispatch(t, b, "delete_memory", map[string]string{"project": "web", "key": "fact-0"})
	data = dispatch(t, b, "browse_memories", map[string]any{"project": "web"})
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 2, page.Total)

	dispatch(t, b, "clear_memories", map[string]string{"project": "web"})
	data = dispatch(t, b, "browse_memories", map[string]any{"project": "web"})
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 0, page.Total)
}

func TestMemoryCommands_RejectTraversalProjectNames(t *testing.T) {
	b := newTestBridge(t)

	// The project value names a file under the memory dir; it must not be
	// able to point elsewhere.
	for _, command := range []string{"store_memory", "delete_memory", "clear_memories", "browse_memories"} {
		args, err := json.Marshal(map[string]string{
			"project": "../../escaped",
			"key":     "k",
			"value":   "v",
		})
		require.NoError(t, err)
		_, err = b.Dispatch(context.Background(), command, args)
		assert.Error(t, err, command)
	}
}
