package marketplace

import (
	"embed"
	"encoding/json"

	"agentdeck/internal/errors"
)

//go:embed catalogs/*.json
var catalogFS embed.FS

var catalogFiles = map[Kind]string{
	KindSkill:    "catalogs/skills.json",
	KindMCP:      "catalogs/mcp.json",
	KindTemplate: "catalogs/templates.json",
}

// Bundled returns the catalog compiled into the binary for a kind.
func Bundled(kind Kind) ([]Entry, error) {
	file, ok := catalogFiles[kind]
	if !ok {
		return nil, errors.Newf("unknown catalog kind %q", kind)
	}
	data, err := catalogFS.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading bundled %s catalog", kind)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parsing bundled %s catalog", kind)
	}
	for i := range entries {
		entries[i].Kind = kind
	}
	return entries, nil
}
