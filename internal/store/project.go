package store

import (
	"os"
	"path/filepath"
	"time"

	"agentdeck/internal/errors"
	"agentdeck/pkg/fileutil"
)

// Project bundles a directory with the skills, MCP servers, providers, and
// agents selected for it. References are names only; a referenced entity
// may have been deleted since, and that is not an error.
type Project struct {
	// Name is the storage key and is immutable once created.
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Directory   string   `json:"directory,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	MCPServers  []string `json:"mcp_servers,omitempty"`

	// Providers lists the model providers the project is set up for. Carried
	// through save/load for the shell; sync does not interpret it.
	Providers []string `json:"providers,omitempty"`

	Agents []string `json:"agents,omitempty"`

	// Managed records, per agent id, the MCP server entries the last sync
	// wrote into that agent's config. Sync uses it to retract entries the
	// project no longer selects without touching foreign ones.
	Managed map[string][]string `json:"managed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListProjects returns all project names, sorted.
func (s *Store) ListProjects() ([]string, error) {
	return s.listNames(projectsDir, ".json")
}

// ReadProject loads a project by name. Returns ErrNotFound if no such
// project exists.
func (s *Store) ReadProject(name string) (*Project, error) {
	path := filepath.Join(s.dir(projectsDir), name+".json")
	var p Project
	if err := fileutil.ReadJSON(path, &p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithDetailf(errors.ErrNotFound, "project %q", name)
		}
		return nil, errors.Wrapf(err, "reading project %q", name)
	}
	p.Name = name
	return &p, nil
}

// SaveProject persists a project keyed by its name, stamping timestamps.
// The name is the storage key: saving under a new name creates a new
// project, and CreatedAt of an existing one is preserved.
func (s *Store) SaveProject(p *Project) error {
	if err := CheckName(p.Name); err != nil {
		return err
	}

	now := time.Now().UTC()
	if existing, err := s.ReadProject(p.Name); err == nil {
		p.CreatedAt = existing.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	dir, err := s.ensureDir(projectsDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, p.Name+".json")
	return errors.Wrapf(fileutil.WriteJSONAtomic(path, p), "saving project %q", p.Name)
}

// DeleteProject removes a project by name. The project's memory file, if
// any, is removed with it; referenced skills and servers are left alone.
func (s *Store) DeleteProject(name string) error {
	if err := s.remove(projectsDir, name+".json"); err != nil {
		return err
	}
	// Memory is scoped to the project and has no meaning without it.
	os.Remove(filepath.Join(s.dir(memoryDir), name+".json"))
	return nil
}
