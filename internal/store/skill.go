package store

import (
	"os"
	"path/filepath"

	"agentdeck/internal/errors"
	"agentdeck/internal/paths"
	"agentdeck/pkg/fileutil"
	"agentdeck/pkg/frontmatter"
)

// Skill is a reusable instruction document: Markdown content with optional
// YAML frontmatter carrying a display name and description.
type Skill struct {
	// Name is the storage key.
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Content is the Markdown body without frontmatter.
	Content string `json:"content"`

	// Source identifies where an installed marketplace skill came from.
	// Nil for locally authored skills.
	Source *SkillSource `json:"source,omitempty"`

	// InAgents and InClaude report whether the skill is currently present
	// in the corresponding sync targets. Computed at read time, never
	// persisted.
	InAgents bool `json:"in_agents"`
	InClaude bool `json:"in_claude"`
}

// SkillSource describes the marketplace origin of an installed skill.
type SkillSource struct {
	Repo string `json:"repo"`
	ID   string `json:"id"`
}

// skillMatter is the frontmatter block of a skill file.
type skillMatter struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	SourceRepo  string `yaml:"source_repo,omitempty"`
	SourceID    string `yaml:"source_id,omitempty"`
}

// ListSkills returns all skill names, sorted.
func (s *Store) ListSkills() ([]string, error) {
	return s.listNames(skillsDir, ".md")
}

// ReadSkill loads a skill by name and computes its sync presence flags.
func (s *Store) ReadSkill(name string) (*Skill, error) {
	path := filepath.Join(s.dir(skillsDir), name+".md")
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithDetailf(errors.ErrNotFound, "skill %q", name)
		}
		return nil, errors.Wrapf(err, "reading skill %q", name)
	}

	var matter skillMatter
	body, err := frontmatter.Parse(data, &matter)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing skill %q", name)
	}

	skill := &Skill{
		Name:        name,
		Description: matter.Description,
		Content:     string(body),
	}
	if matter.SourceRepo != "" || matter.SourceID != "" {
		skill.Source = &SkillSource{Repo: matter.SourceRepo, ID: matter.SourceID}
	}
	skill.InAgents, skill.InClaude = SkillPresence(name, s.skillDirs)
	return skill, nil
}

// SaveSkill persists a skill keyed by its name.
func (s *Store) SaveSkill(skill *Skill) error {
	if err := CheckName(skill.Name); err != nil {
		return err
	}

	matter := skillMatter{
		Name:        skill.Name,
		Description: skill.Description,
	}
	if skill.Source != nil {
		matter.SourceRepo = skill.Source.Repo
		matter.SourceID = skill.Source.ID
	}

	doc, err := frontmatter.Format(matter, skill.Content)
	if err != nil {
		return errors.Wrapf(err, "formatting skill %q", skill.Name)
	}

	dir, err := s.ensureDir(skillsDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, skill.Name+".md")
	return errors.Wrapf(fileutil.WriteAtomic(path, doc, 0o644), "saving skill %q", skill.Name)
}

// DeleteSkill removes a skill by name. Projects referencing it keep their
// dangling reference; that is by contract not an error.
func (s *Store) DeleteSkill(name string) error {
	return s.remove(skillsDir, name+".md")
}

// SkillPresence reports whether a skill document exists in the Claude
// skills directory and in any other agent's skills directory. dirs
// overrides the real agent paths for tests; pass nil for the defaults.
func SkillPresence(name string, dirs map[string]string) (inAgents, inClaude bool) {
	if dirs == nil {
		dirs = make(map[string]string, 4)
		for _, id := range paths.Agents() {
			dirs[id] = paths.AgentSkillDir(id)
		}
	}
	for id, dir := range dirs {
		if dir == "" || !skillFileExists(dir, name) {
			continue
		}
		if id == paths.AgentClaude {
			inClaude = true
		} else {
			inAgents = true
		}
	}
	return inAgents, inClaude
}

// skillFileExists checks the two layouts agents use: a flat <name>.md file
// or a <name>/SKILL.md directory.
func skillFileExists(dir, name string) bool {
	if _, err := os.Stat(filepath.Join(dir, name+".md")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, name, "SKILL.md")); err == nil {
		return true
	}
	return false
}
