// Package memory implements the per-project memory store: a key→entry
// mapping persisted as one JSON file per project, plus the browse logic
// (filter, sort, paginate) the memory viewer is built on.
package memory

import (
	"os"
	"path/filepath"
	"time"

	"agentdeck/internal/errors"
	"agentdeck/internal/store"
	"agentdeck/pkg/fileutil"
)

// Entry is one remembered fact.
type Entry struct {
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source,omitempty"`
}

// Store persists project memory files under a directory.
type Store struct {
	dir string
}

// NewStore creates a memory store rooted at dir (one <project>.json per
// project).
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns a project's full memory mapping. A project with no memory
// file yields an empty, non-nil map. The project name is validated as a
// storage key; it becomes a file name under the memory directory.
func (s *Store) Load(project string) (map[string]Entry, error) {
	if err := store.CheckName(project); err != nil {
		return nil, errors.Wrap(err, "memory project")
	}
	path := s.path(project)
	entries := make(map[string]Entry)
	if err := fileutil.ReadJSON(path, &entries); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, errors.Wrapf(err, "loading memory for project %q", project)
	}
	return entries, nil
}

// Set stores or replaces one entry under key, stamping the current time
// when e.Timestamp is zero.
func (s *Store) Set(project, key string, e Entry) error {
	if key == "" {
		return errors.Wrap(errors.ErrMissingName, "memory key")
	}
	entries, err := s.Load(project)
	if err != nil {
		return err
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	entries[key] = e
	return s.save(project, entries)
}

// Delete removes one entry. Deleting an absent key is not an error; the
// outcome is the same.
func (s *Store) Delete(project, key string) error {
	entries, err := s.Load(project)
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.save(project, entries)
}

// Clear removes all memory for a project.
func (s *Store) Clear(project string) error {
	if err := store.CheckName(project); err != nil {
		return errors.Wrap(err, "memory project")
	}
	err := os.Remove(s.path(project))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "clearing memory for project %q", project)
	}
	return nil
}

func (s *Store) path(project string) string {
	return filepath.Join(s.dir, project+".json")
}

func (s *Store) save(project string, entries map[string]Entry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "creating memory directory")
	}
	return errors.Wrapf(fileutil.WriteJSONAtomic(s.path(project), entries),
		"saving memory for project %q", project)
}
