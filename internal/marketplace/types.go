// Package marketplace implements the browse-and-install flows for
// community skills, MCP servers, and project templates. Catalogs are
// bundled into the binary; an optional remote endpoint offers full-text
// search with a local fallback filter.
package marketplace

import "agentdeck/internal/errors"

// Kind selects which catalog an entry belongs to.
type Kind string

const (
	KindSkill    Kind = "skill"
	KindMCP      Kind = "mcp"
	KindTemplate Kind = "template"
)

// ErrMissingCredentials is returned by Install when an entry's required
// credential fields are not all filled.
var ErrMissingCredentials = errors.New("missing required credentials")

// Credential is one field an entry needs before it can be installed,
// typically an API token placed into the server's environment.
type Credential struct {
	// Key is the environment variable the value is installed under.
	Key   string `json:"key"`
	Label string `json:"label"`
	// Secret marks values that must be masked in any display.
	Secret bool `json:"secret"`
}

// Server is the MCP server definition carried by a KindMCP entry.
type Server struct {
	Type    string   `json:"type,omitempty"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	URL     string   `json:"url,omitempty"`
}

// Entry is one installable catalog item.
type Entry struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Author      string `json:"author,omitempty"`

	Tags []string `json:"tags,omitempty"`

	// Content is the Markdown document for skill and template entries.
	Content string `json:"content,omitempty"`

	// Server is set for MCP entries.
	Server *Server `json:"server,omitempty"`

	// Credentials the user must supply before install.
	Credentials []Credential `json:"credentials,omitempty"`
}

// MissingCredentials returns the credential keys not present (or empty)
// in the given values. Install stays disabled until this is empty.
func (e *Entry) MissingCredentials(values map[string]string) []string {
	var missing []string
	for _, c := range e.Credentials {
		if values[c.Key] == "" {
			missing = append(missing, c.Key)
		}
	}
	return missing
}
