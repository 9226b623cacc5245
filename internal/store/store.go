// Package store implements the filesystem-backed entity store: projects,
// skills, rules, templates, and MCP server configs, each kept as one file
// keyed by entity name. The files are the sole source of truth; nothing is
// cached between calls.
package store

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"agentdeck/internal/errors"
	"agentdeck/internal/paths"
)

// namePattern validates entity names used as storage keys. Names are
// lowercase alphanumeric with hyphens, starting with a letter, the same
// shape every agent CLI accepts for directory names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Store reads and writes entities under a root directory.
type Store struct {
	root string

	// skillDirs overrides the agent skill directories consulted for a
	// skill's presence flags. Nil means the real per-agent paths.
	skillDirs map[string]string
}

// New creates a store rooted at dir. Directories are created lazily on
// first save.
func New(dir string) *Store {
	return &Store{root: dir}
}

// SetSkillDirs overrides the agent skill directories used for presence
// flags, keyed by agent id. Pass an empty map to consult no directories.
func (s *Store) SetSkillDirs(dirs map[string]string) {
	s.skillDirs = dirs
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// ValidName reports whether name can be used as a storage key.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// CheckName returns ErrInvalidName (with detail) for unusable storage keys.
func CheckName(name string) error {
	if name == "" {
		return errors.ErrMissingName
	}
	if !ValidName(name) {
		return errors.WithDetailf(errors.ErrInvalidName,
			"name %q must be lowercase alphanumeric with hyphens, starting with a letter", name)
	}
	return nil
}

// entity subdirectories under the store root.
const (
	projectsDir  = "projects"
	skillsDir    = "skills"
	rulesDir     = "rules"
	templatesDir = "templates"
	mcpDir       = "mcp"
	memoryDir    = "memory"
)

// dir returns the absolute path of an entity subdirectory.
func (s *Store) dir(sub string) string {
	return filepath.Join(s.root, sub)
}

// ensureDir creates an entity subdirectory before a write.
func (s *Store) ensureDir(sub string) (string, error) {
	dir := s.dir(sub)
	if err := paths.EnsureDir(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s directory", sub)
	}
	return dir, nil
}

// listNames returns the sorted entity names in a subdirectory, derived from
// file names with the given extension. A missing directory is an empty list.
func (s *Store) listNames(sub, ext string) ([]string, error) {
	entries, err := os.ReadDir(s.dir(sub))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, "listing %s", sub)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// remove deletes an entity file, returning ErrNotFound when it does not
// exist.
func (s *Store) remove(sub, file string) error {
	err := os.Remove(filepath.Join(s.dir(sub), file))
	if os.IsNotExist(err) {
		return errors.WithDetailf(errors.ErrNotFound, "%s/%s", sub, file)
	}
	return errors.Wrapf(err, "deleting %s/%s", sub, file)
}
