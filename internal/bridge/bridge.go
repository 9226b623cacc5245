// Package bridge exposes every backend operation as a named command
// taking a JSON argument object and returning a JSON payload. The
// desktop shell calls it over localhost HTTP; the CLI calls the same
// handlers in-process, so both surfaces share one behavior.
package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"agentdeck/internal/analytics"
	"agentdeck/internal/errors"
	"agentdeck/internal/marketplace"
	"agentdeck/internal/memory"
	"agentdeck/internal/store"
	"agentdeck/internal/sync"
)

// ErrUnknownCommand is returned for command names the bridge does not
// serve.
var ErrUnknownCommand = errors.New("unknown command")

// Handler serves one command.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Deps are the collaborators a Bridge dispatches into.
type Deps struct {
	Store     *store.Store
	Memory    *memory.Store
	Syncer    *sync.Syncer
	Market    *marketplace.Client
	Installer *marketplace.Installer
	Analytics *analytics.Client
	Log       *slog.Logger
}

// Bridge routes command names to handlers.
type Bridge struct {
	deps     Deps
	handlers map[string]Handler
}

// New creates a Bridge serving the full command surface.
func New(deps Deps) *Bridge {
	b := &Bridge{deps: deps}
	b.handlers = map[string]Handler{
		"list_agents":               b.listAgents,
		"list_agents_with_projects": b.listAgentsWithProjects,

		"get_projects":                    b.getProjects,
		"read_project":                    b.readProject,
		"save_project":                    b.saveProject,
		"delete_project":                  b.deleteProject,
		"autodetect_project_dependencies": b.autodetectProjectDependencies,
		"sync_project":                    b.syncProject,

		"get_skills":      b.getSkills,
		"read_skill":      b.readSkill,
		"save_skill":      b.saveSkill,
		"delete_skill":    b.deleteSkill,
		"sync_skill":      b.syncSkill,
		"sync_all_skills": b.syncAllSkills,

		"list_mcp_server_configs":  b.listMCPServerConfigs,
		"read_mcp_server_config":   b.readMCPServerConfig,
		"save_mcp_server_config":   b.saveMCPServerConfig,
		"delete_mcp_server_config": b.deleteMCPServerConfig,

		"get_rules":   b.getRules,
		"read_rule":   b.readRule,
		"save_rule":   b.saveRule,
		"delete_rule": b.deleteRule,

		"get_templates":   b.getTemplates,
		"read_template":   b.readTemplate,
		"save_template":   b.saveTemplate,
		"delete_template": b.deleteTemplate,

		"list_mcp_marketplace":          b.listMCPMarketplace,
		"search_mcp_marketplace":        b.searchMCPMarketplace,
		"install_mcp_marketplace_entry": b.installMCPMarketplaceEntry,

		"list_skill_marketplace":          b.listSkillMarketplace,
		"search_skill_marketplace":        b.searchSkillMarketplace,
		"install_skill_marketplace_entry": b.installSkillMarketplaceEntry,

		"list_bundled_project_templates":   b.listBundledProjectTemplates,
		"search_bundled_project_templates": b.searchBundledProjectTemplates,
		"import_bundled_project_template":  b.importBundledProjectTemplate,
		"get_project_templates":            b.getTemplates,

		"browse_memories": b.browseMemories,
		"store_memory":    b.storeMemory,
		"delete_memory":   b.deleteMemory,
		"clear_memories":  b.clearMemories,
	}
	return b
}

// Commands returns every served command name, sorted.
func (b *Bridge) Commands() []string {
	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs one command and returns its JSON payload. args may be
// nil for commands without parameters.
func (b *Bridge) Dispatch(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	handler, ok := b.handlers[name]
	if !ok {
		return nil, errors.WithDetailf(ErrUnknownCommand, "command %q", name)
	}

	if b.deps.Analytics != nil {
		b.deps.Analytics.Track(ctx, "command_invoked", map[string]string{"command": name})
	}

	result, err := handler(ctx, args)
	if err != nil {
		b.deps.Log.Debug("command failed", "command", name, "error", err)
		return nil, err
	}
	payload, err := json.Marshal(result)
	return payload, errors.Wrapf(err, "encoding %s result", name)
}

// decode parses a command's argument object. A nil args is treated as
// an empty object so optional-argument commands need no special case.
func decode[T any](args json.RawMessage, into *T) error {
	if len(args) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(args, into), "parsing command arguments")
}
