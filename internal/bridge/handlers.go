package bridge

import (
	"context"
	"encoding/json"

	"agentdeck/internal/agent"
	"agentdeck/internal/errors"
	"agentdeck/internal/marketplace"
	"agentdeck/internal/memory"
	"agentdeck/internal/store"
	"agentdeck/internal/sync"
)

// nameArgs is the common single-key argument object.
type nameArgs struct {
	Name string `json:"name"`
}

func (b *Bridge) listAgents(context.Context, json.RawMessage) (any, error) {
	return agent.Catalog(), nil
}

// agentUsage is a catalog entry annotated with the projects that
// target the agent.
type agentUsage struct {
	agent.Info
	Projects []string `json:"projects"`
}

func (b *Bridge) listAgentsWithProjects(context.Context, json.RawMessage) (any, error) {
	names, err := b.deps.Store.ListProjects()
	if err != nil {
		return nil, err
	}

	usage := make(map[string][]string)
	for _, name := range names {
		p, err := b.deps.Store.ReadProject(name)
		if err != nil {
			return nil, err
		}
		for _, id := range p.Agents {
			usage[id] = append(usage[id], name)
		}
	}

	catalog := agent.Catalog()
	out := make([]agentUsage, len(catalog))
	for i, info := range catalog {
		projects := usage[info.ID]
		if projects == nil {
			projects = []string{}
		}
		out[i] = agentUsage{Info: info, Projects: projects}
	}
	return out, nil
}

func (b *Bridge) getProjects(context.Context, json.RawMessage) (any, error) {
	return b.deps.Store.ListProjects()
}

func (b *Bridge) readProject(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.deps.Store.ReadProject(a.Name)
}

func (b *Bridge) saveProject(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Project *store.Project `json:"project"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if a.Project == nil {
		return nil, errors.Wrap(errors.ErrMissingName, "project")
	}
	if err := b.deps.Store.SaveProject(a.Project); err != nil {
		return nil, err
	}
	return a.Project, nil
}

func (b *Bridge) deleteProject(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Store.DeleteProject(a.Name)
}

func (b *Bridge) autodetectProjectDependencies(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Directory string `json:"directory"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return sync.Autodetect(a.Directory)
}

func (b *Bridge) syncProject(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.deps.Syncer.SyncProject(a.Name)
}

func (b *Bridge) getSkills(context.Context, json.RawMessage) (any, error) {
	return b.deps.Store.ListSkills()
}

func (b *Bridge) readSkill(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.deps.Store.ReadSkill(a.Name)
}

func (b *Bridge) saveSkill(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Skill *store.Skill `json:"skill"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if a.Skill == nil {
		return nil, errors.Wrap(errors.ErrMissingName, "skill")
	}
	if err := b.deps.Store.SaveSkill(a.Skill); err != nil {
		return nil, err
	}
	return a.Skill, nil
}

func (b *Bridge) deleteSkill(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Store.DeleteSkill(a.Name)
}

func (b *Bridge) syncSkill(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Name   string   `json:"name"`
		Agents []string `json:"agents,omitempty"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Syncer.SyncSkill(a.Name, a.Agents)
}

func (b *Bridge) syncAllSkills(context.Context, json.RawMessage) (any, error) {
	return b.deps.Syncer.SyncAllSkills()
}

func (b *Bridge) listMCPServerConfigs(context.Context, json.RawMessage) (any, error) {
	return b.deps.Store.ListMCPServers()
}

// serverPayload wraps a config with its name, which the config body
// itself never carries.
type serverPayload struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

func (b *Bridge) readMCPServerConfig(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	cfg, err := b.deps.Store.ReadMCPServer(a.Name)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding MCP server %q", a.Name)
	}
	return serverPayload{Name: a.Name, Config: body}, nil
}

func (b *Bridge) saveMCPServerConfig(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Name   string          `json:"name"`
		Config json.RawMessage `json:"config"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	cfg, err := b.deps.Store.SaveMCPServerRaw(a.Name, a.Config)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding MCP server %q", a.Name)
	}
	return serverPayload{Name: a.Name, Config: body}, nil
}

func (b *Bridge) deleteMCPServerConfig(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Store.DeleteMCPServer(a.Name)
}

func (b *Bridge) getRules(context.Context, json.RawMessage) (any, error) {
	return b.deps.Store.ListRules()
}

func (b *Bridge) readRule(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		ID string `json:"id"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.deps.Store.ReadRule(a.ID)
}

func (b *Bridge) saveRule(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Rule *store.Rule `json:"rule"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if a.Rule == nil {
		return nil, errors.Wrap(errors.ErrMissingName, "rule")
	}
	if err := b.deps.Store.SaveRule(a.Rule); err != nil {
		return nil, err
	}
	return a.Rule, nil
}

func (b *Bridge) deleteRule(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		ID string `json:"id"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Store.DeleteRule(a.ID)
}

func (b *Bridge) getTemplates(context.Context, json.RawMessage) (any, error) {
	return b.deps.Store.ListTemplates()
}

func (b *Bridge) readTemplate(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.deps.Store.ReadTemplate(a.Name)
}

func (b *Bridge) saveTemplate(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Template *store.Template `json:"template"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	if a.Template == nil {
		return nil, errors.Wrap(errors.ErrMissingName, "template")
	}
	if err := b.deps.Store.SaveTemplate(a.Template); err != nil {
		return nil, err
	}
	return a.Template, nil
}

func (b *Bridge) deleteTemplate(_ context.Context, args json.RawMessage) (any, error) {
	var a nameArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Store.DeleteTemplate(a.Name)
}

// marketplaceEntry annotates a catalog entry with its local install
// state so the UI can disable the install action.
type marketplaceEntry struct {
	marketplace.Entry
	Installed bool `json:"installed"`
}

func (b *Bridge) marketplaceList(ctx context.Context, kind marketplace.Kind, query string) (any, error) {
	entries, err := b.deps.Market.Search(ctx, kind, query)
	if err != nil {
		return nil, err
	}
	installed, err := b.deps.Installer.Installed(kind)
	if err != nil {
		return nil, err
	}
	out := make([]marketplaceEntry, len(entries))
	for i, e := range entries {
		out[i] = marketplaceEntry{Entry: e, Installed: installed[e.Name]}
	}
	return out, nil
}

type searchArgs struct {
	Query string `json:"query"`
}

type installArgs struct {
	ID          string            `json:"id"`
	Credentials map[string]string `json:"credentials,omitempty"`
}

func (b *Bridge) marketplaceInstall(ctx context.Context, kind marketplace.Kind, args json.RawMessage) (any, error) {
	var a installArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	entries, err := b.deps.Market.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == a.ID {
			return b.deps.Installer.Install(&entries[i], a.Credentials)
		}
	}
	return nil, errors.WithDetailf(errors.ErrNotFound, "marketplace entry %q", a.ID)
}

func (b *Bridge) listMCPMarketplace(ctx context.Context, _ json.RawMessage) (any, error) {
	return b.marketplaceList(ctx, marketplace.KindMCP, "")
}

func (b *Bridge) searchMCPMarketplace(ctx context.Context, args json.RawMessage) (any, error) {
	var a searchArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.marketplaceList(ctx, marketplace.KindMCP, a.Query)
}

func (b *Bridge) installMCPMarketplaceEntry(ctx context.Context, args json.RawMessage) (any, error) {
	return b.marketplaceInstall(ctx, marketplace.KindMCP, args)
}

func (b *Bridge) listSkillMarketplace(ctx context.Context, _ json.RawMessage) (any, error) {
	return b.marketplaceList(ctx, marketplace.KindSkill, "")
}

func (b *Bridge) searchSkillMarketplace(ctx context.Context, args json.RawMessage) (any, error) {
	var a searchArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.marketplaceList(ctx, marketplace.KindSkill, a.Query)
}

func (b *Bridge) installSkillMarketplaceEntry(ctx context.Context, args json.RawMessage) (any, error) {
	return b.marketplaceInstall(ctx, marketplace.KindSkill, args)
}

func (b *Bridge) listBundledProjectTemplates(ctx context.Context, _ json.RawMessage) (any, error) {
	return b.marketplaceList(ctx, marketplace.KindTemplate, "")
}

func (b *Bridge) searchBundledProjectTemplates(ctx context.Context, args json.RawMessage) (any, error) {
	var a searchArgs
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return b.marketplaceList(ctx, marketplace.KindTemplate, a.Query)
}

func (b *Bridge) importBundledProjectTemplate(ctx context.Context, args json.RawMessage) (any, error) {
	return b.marketplaceInstall(ctx, marketplace.KindTemplate, args)
}

func (b *Bridge) browseMemories(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Project    string `json:"project"`
		Query      string `json:"query,omitempty"`
		Sort       string `json:"sort,omitempty"`
		Descending bool   `json:"descending,omitempty"`
		Page       int    `json:"page,omitempty"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	entries, err := b.deps.Memory.Load(a.Project)
	if err != nil {
		return nil, err
	}
	by := memory.SortByKey
	if a.Sort == string(memory.SortByDate) {
		by = memory.SortByDate
	}
	if a.Page == 0 {
		a.Page = 1
	}
	return memory.Browse(entries, a.Query, by, a.Descending, a.Page), nil
}

func (b *Bridge) storeMemory(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Project string `json:"project"`
		Key     string `json:"key"`
		Value   string `json:"value"`
		Source  string `json:"source,omitempty"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Memory.Set(a.Project, a.Key, memory.Entry{
		Value:  a.Value,
		Source: a.Source,
	})
}

func (b *Bridge) deleteMemory(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Project string `json:"project"`
		Key     string `json:"key"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Memory.Delete(a.Project, a.Key)
}

func (b *Bridge) clearMemories(_ context.Context, args json.RawMessage) (any, error) {
	var a struct {
		Project string `json:"project"`
	}
	if err := decode(args, &a); err != nil {
		return nil, err
	}
	return nil, b.deps.Memory.Clear(a.Project)
}
