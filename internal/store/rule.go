package store

import (
	"os"
	"path/filepath"

	"agentdeck/internal/errors"
	"agentdeck/pkg/fileutil"
	"agentdeck/pkg/frontmatter"
)

// Rule is a named Markdown rule document. The ID is the machine name used
// as the storage key; Name is the human display name.
type Rule struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ruleMatter is the frontmatter block of a rule file.
type ruleMatter struct {
	Name string `yaml:"name,omitempty"`
}

// ListRules returns all rule ids, sorted.
func (s *Store) ListRules() ([]string, error) {
	return s.listNames(rulesDir, ".md")
}

// ReadRule loads a rule by id.
func (s *Store) ReadRule(id string) (*Rule, error) {
	path := filepath.Join(s.dir(rulesDir), id+".md")
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithDetailf(errors.ErrNotFound, "rule %q", id)
		}
		return nil, errors.Wrapf(err, "reading rule %q", id)
	}

	var matter ruleMatter
	body, err := frontmatter.Parse(data, &matter)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing rule %q", id)
	}

	name := matter.Name
	if name == "" {
		name = id
	}
	return &Rule{ID: id, Name: name, Content: string(body)}, nil
}

// SaveRule persists a rule keyed by its id.
func (s *Store) SaveRule(r *Rule) error {
	if err := CheckName(r.ID); err != nil {
		return err
	}

	doc, err := frontmatter.Format(ruleMatter{Name: r.Name}, r.Content)
	if err != nil {
		return errors.Wrapf(err, "formatting rule %q", r.ID)
	}

	dir, err := s.ensureDir(rulesDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, r.ID+".md")
	return errors.Wrapf(fileutil.WriteAtomic(path, doc, 0o644), "saving rule %q", r.ID)
}

// DeleteRule removes a rule by id.
func (s *Store) DeleteRule(id string) error {
	return s.remove(rulesDir, id+".md")
}
