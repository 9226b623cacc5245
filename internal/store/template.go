package store

import (
	"os"
	"path/filepath"

	"agentdeck/internal/errors"
	"agentdeck/pkg/fileutil"
)

// Template is a Markdown starting point for a project's instruction file.
type Template struct {
	// Name is the storage key.
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ListTemplates returns all template names, sorted.
func (s *Store) ListTemplates() ([]string, error) {
	return s.listNames(templatesDir, ".md")
}

// ReadTemplate loads a template by name.
func (s *Store) ReadTemplate(name string) (*Template, error) {
	path := filepath.Join(s.dir(templatesDir), name+".md")
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithDetailf(errors.ErrNotFound, "template %q", name)
		}
		return nil, errors.Wrapf(err, "reading template %q", name)
	}
	return &Template{Name: name, Content: string(data)}, nil
}

// SaveTemplate persists a template keyed by its name.
func (s *Store) SaveTemplate(tpl *Template) error {
	if err := CheckName(tpl.Name); err != nil {
		return err
	}

	dir, err := s.ensureDir(templatesDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, tpl.Name+".md")
	return errors.Wrapf(fileutil.WriteAtomic(path, []byte(tpl.Content), 0o644),
		"saving template %q", tpl.Name)
}

// DeleteTemplate removes a template by name.
func (s *Store) DeleteTemplate(name string) error {
	return s.remove(templatesDir, name+".md")
}
