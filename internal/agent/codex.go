package agent

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
	"agentdeck/pkg/fileutil"
)

// Codex writes Codex CLI's config: MCP servers live in
// [mcp_servers.<name>] tables of ~/.codex/config.toml alongside the
// rest of the user's settings.
type Codex struct{}

// ID implements Adapter.
func (*Codex) ID() string { return paths.AgentCodex }

// ApplyMCP implements Adapter.
func (*Codex) ApplyMCP(path string, upsert map[string]*mcp.ServerConfig, retract []string) error {
	root, err := readTOMLObject(path)
	if err != nil {
		return err
	}
	servers := objectSection(root, "mcp_servers")
	for _, name := range retract {
		delete(servers, name)
	}
	for name, cfg := range upsert {
		servers[name] = codexServer(cfg)
	}

	data, err := toml.Marshal(root)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	return fileutil.WriteAtomic(path, data, 0o644)
}

// ListMCP implements Adapter.
func (*Codex) ListMCP(path string) ([]string, error) {
	root, err := readTOMLObject(path)
	if err != nil {
		return nil, err
	}
	servers, _ := root["mcp_servers"].(map[string]any)
	return sortedKeys(servers), nil
}

func readTOMLObject(path string) (map[string]any, error) {
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if root == nil {
		root = map[string]any{}
	}
	return root, nil
}

func codexServer(cfg *mcp.ServerConfig) map[string]any {
	out := map[string]any{}
	if cfg.Remote() {
		// Codex is stdio-first; the url form is written for forward
		// compatibility and flagged in the catalog's mcp_note.
		out["url"] = cfg.URL
		return out
	}
	out["command"] = cfg.Command
	if len(cfg.Args) > 0 {
		out["args"] = cfg.Args
	}
	if len(cfg.Env) > 0 {
		out["env"] = cfg.Env
	}
	if cfg.Cwd != "" {
		out["cwd"] = cfg.Cwd
	}
	return out
}
