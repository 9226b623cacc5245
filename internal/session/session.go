// Package session persists UI state that should survive restarts: the
// last selected project and the last browse settings. State lives in a
// single JSON file under the XDG state directory and is always safe to
// lose; every accessor degrades to defaults.
package session

import (
	"os"
	"path/filepath"
	"time"

	"agentdeck/internal/errors"
	"agentdeck/pkg/fileutil"
)

// State is the persisted session snapshot.
type State struct {
	// LastProject is the name of the most recently selected project.
	LastProject string `json:"last_project,omitempty"`
	// LastAgent is the most recently targeted agent ID.
	LastAgent string `json:"last_agent,omitempty"`
	// UpdatedAt is when the state was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a session store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted state. A missing or unreadable file yields
// a zero state, never an error: session state is advisory.
func (s *Store) Load() State {
	var st State
	if err := fileutil.ReadJSON(s.path, &st); err != nil {
		return State{}
	}
	return st
}

// Save persists the state, stamping UpdatedAt.
func (s *Store) Save(st State) error {
	st.UpdatedAt = time.Now().UTC()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating state directory")
	}
	return errors.Wrap(fileutil.WriteJSONAtomic(s.path, st), "saving session state")
}

// SetLastProject records name as the last selected project.
func (s *Store) SetLastProject(name string) error {
	st := s.Load()
	st.LastProject = name
	return s.Save(st)
}

// Restore picks the project to select on startup: the remembered one if
// it still exists, otherwise the first of existing, otherwise empty.
func Restore(remembered string, existing []string) string {
	for _, name := range existing {
		if name == remembered {
			return remembered
		}
	}
	if len(existing) > 0 {
		return existing[0]
	}
	return ""
}
