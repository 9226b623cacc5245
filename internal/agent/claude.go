package agent

import (
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
	"agentdeck/pkg/fileutil"
)

// Claude writes Claude Code's config: MCP servers live under the
// "mcpServers" key of ~/.claude.json alongside unrelated user settings.
type Claude struct{}

// ID implements Adapter.
func (*Claude) ID() string { return paths.AgentClaude }

// ApplyMCP implements Adapter.
func (*Claude) ApplyMCP(path string, upsert map[string]*mcp.ServerConfig, retract []string) error {
	root, err := readJSONObject(path)
	if err != nil {
		return err
	}
	servers := objectSection(root, "mcpServers")
	for _, name := range retract {
		delete(servers, name)
	}
	for name, cfg := range upsert {
		servers[name] = claudeServer(cfg)
	}
	return fileutil.WriteJSONAtomic(path, root)
}

// ListMCP implements Adapter.
func (*Claude) ListMCP(path string) ([]string, error) {
	root, err := readJSONObject(path)
	if err != nil {
		return nil, err
	}
	servers, _ := root["mcpServers"].(map[string]any)
	return sortedKeys(servers), nil
}

// claudeServer renders one server entry. Claude Code infers stdio when
// no type is given, so stdio entries carry only command/args/env/cwd;
// remote entries carry an explicit type plus url/headers.
func claudeServer(cfg *mcp.ServerConfig) map[string]any {
	out := map[string]any{}
	if cfg.Remote() {
		out["type"] = cfg.Type
		out["url"] = cfg.URL
		if len(cfg.Headers) > 0 {
			out["headers"] = cfg.Headers
		}
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
