package agent

import (
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
	"agentdeck/pkg/fileutil"
)

// OpenCode writes OpenCode's config: MCP servers live under the "mcp"
// key of ~/.config/opencode/opencode.json. OpenCode calls stdio servers
// "local" (command as a single argv array) and remote servers "remote".
type OpenCode struct{}

// ID implements Adapter.
func (*OpenCode) ID() string { return paths.AgentOpenCode }

// ApplyMCP implements Adapter.
func (*OpenCode) ApplyMCP(path string, upsert map[string]*mcp.ServerConfig, retract []string) error {
	root, err := readJSONObject(path)
	if err != nil {
		return err
	}
	servers := objectSection(root, "mcp")
	for _, name := range retract {
		delete(servers, name)
	}
	for name, cfg := range upsert {
		servers[name] = opencodeServer(cfg)
	}
	return fileutil.WriteJSONAtomic(path, root)
}

// ListMCP implements Adapter.
func (*OpenCode) ListMCP(path string) ([]string, error) {
	root, err := readJSONObject(path)
	if err != nil {
		return nil, err
	}
	servers, _ := root["mcp"].(map[string]any)
	return sortedKeys(servers), nil
}

func opencodeServer(cfg *mcp.ServerConfig) map[string]any {
	out := map[string]any{}
	if cfg.Remote() {
		out["type"] = "remote"
		out["url"] = cfg.URL
		if len(cfg.Headers) > 0 {
			out["headers"] = cfg.Headers
		}
	} else {
		out["type"] = "local"
		argv := make([]string, 0, 1+len(cfg.Args))
		argv = append(argv, cfg.Command)
		argv = append(argv, cfg.Args...)
		out["command"] = argv
		if len(cfg.Env) > 0 {
			out["environment"] = cfg.Env
		}
	}
	if !cfg.Enabled {
		out["enabled"] = false
	}
	return out
}
