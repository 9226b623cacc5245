package agent

import (
	"encoding/json"
	"os"
	"sort"

	"agentdeck/internal/errors"
	"agentdeck/pkg/fileutil"
)

// readJSONObject loads a JSON config file as a generic object so
// unrelated settings survive a rewrite. A missing file yields an empty
// object.
func readJSONObject(path string) (map[string]any, error) {
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if root == nil {
		root = map[string]any{}
	}
	return root, nil
}

// objectSection returns the named sub-object of root, creating it when
// absent or of the wrong shape.
func objectSection(root map[string]any, key string) map[string]any {
	if section, ok := root[key].(map[string]any); ok {
		return section
	}
	section := map[string]any{}
	root[key] = section
	return section
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
