package agent

import (
	"agentdeck/internal/mcp"
	"agentdeck/internal/paths"
	"agentdeck/pkg/fileutil"
)

// Gemini writes Gemini CLI's settings: MCP servers live under the
// "mcpServers" key of ~/.gemini/settings.json. Gemini distinguishes
// streaming HTTP ("httpUrl") from SSE ("url").
type Gemini struct{}

// ID implements Adapter.
func (*Gemini) ID() string { return paths.AgentGemini }

// ApplyMCP implements Adapter.
func (*Gemini) ApplyMCP(path string, upsert map[string]*mcp.ServerConfig, retract []string) error {
	root, err := readJSONObject(path)
	if err != nil {
		return err
	}
	servers := objectSection(root, "mcpServers")
	for _, name := range retract {
		delete(servers, name)
	}
	for name, cfg := range upsert {
		servers[name] = geminiServer(cfg)
	}
	return fileutil.WriteJSONAtomic(path, root)
}

// ListMCP implements Adapter.
func (*Gemini) ListMCP(path string) ([]string, error) {
	root, err := readJSONObject(path)
	if err != nil {
		return nil, err
	}
	servers, _ := root["mcpServers"].(map[string]any)
	return sortedKeys(servers), nil
}

func geminiServer(cfg *mcp.ServerConfig) map[string]any {
	out := map[string]any{}
	switch {
	case cfg.Type == mcp.TypeHTTP:
		out["httpUrl"] = cfg.URL
	case cfg.Remote():
		out["url"] = cfg.URL
	default:
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
	}
	if cfg.Remote() && len(cfg.Headers) > 0 {
		out["headers"] = cfg.Headers
	}
	if cfg.Timeout > 0 {
		out["timeout"] = cfg.Timeout
	}
	return out
}
