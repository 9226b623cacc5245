package marketplace

import (
	"strings"

	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
	"agentdeck/internal/store"
)

// Installer writes marketplace entries into the local store.
type Installer struct {
	store *store.Store
}

// NewInstaller creates an installer over st.
func NewInstaller(st *store.Store) *Installer {
	return &Installer{store: st}
}

// InstallResult reports the outcome of an Install call.
type InstallResult struct {
	Name string `json:"name"`
	// AlreadyInstalled is true when the entry existed before the call;
	// install is idempotent and nothing was rewritten.
	AlreadyInstalled bool `json:"already_installed"`
}

// Installed returns which entry names of a kind already exist locally.
func (i *Installer) Installed(kind Kind) (map[string]bool, error) {
	var names []string
	var err error
	switch kind {
	case KindSkill:
		names, err = i.store.ListSkills()
	case KindMCP:
		names, err = i.store.ListMCPServers()
	case KindTemplate:
		names, err = i.store.ListTemplates()
	default:
		return nil, errors.Newf("unknown catalog kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set, nil
}

// Install writes an entry into the store. All required credential
// fields must be filled first; an entry whose name already exists is
// left untouched and reported as installed.
func (i *Installer) Install(e *Entry, creds map[string]string) (*InstallResult, error) {
	if missing := e.MissingCredentials(creds); len(missing) > 0 {
		return nil, errors.WithDetailf(ErrMissingCredentials,
			"required: %s", strings.Join(missing, ", "))
	}

	installed, err := i.Installed(e.Kind)
	if err != nil {
		return nil, err
	}
	if installed[e.Name] {
		return &InstallResult{Name: e.Name, AlreadyInstalled: true}, nil
	}

	switch e.Kind {
	case KindSkill:
		err = i.store.SaveSkill(&store.Skill{
			Name:        e.Name,
			Description: e.Description,
			Content:     e.Content,
			Source:      &store.SkillSource{Repo: repoOf(e.ID), ID: e.ID},
		})
	case KindMCP:
		err = i.installServer(e, creds)
	case KindTemplate:
		err = i.store.SaveTemplate(&store.Template{Name: e.Name, Content: e.Content})
	default:
		err = errors.Newf("unknown catalog kind %q", e.Kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "installing %q", e.Name)
	}
	return &InstallResult{Name: e.Name}, nil
}

func (i *Installer) installServer(e *Entry, creds map[string]string) error {
	if e.Server == nil {
		return errors.Newf("entry %q has no server definition", e.Name)
	}
	cfg := mcp.New(e.Name)
	cfg.Type = e.Server.Type
	cfg.Command = e.Server.Command
	cfg.Args = e.Server.Args
	cfg.URL = e.Server.URL
	for _, c := range e.Credentials {
		if cfg.Env == nil {
			cfg.Env = make(map[string]string, len(e.Credentials))
		}
		cfg.Env[c.Key] = creds[c.Key]
	}
	cfg.Normalize()
	return i.store.SaveMCPServer(cfg)
}

// repoOf extracts the repository part of a catalog ID like
// "community/github".
func repoOf(id string) string {
	if i := strings.Index(id, "/"); i > 0 {
		return id[:i]
	}
	return id
}
