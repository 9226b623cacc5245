package store

import (
	"os"
	"path/filepath"

	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
	"agentdeck/pkg/fileutil"
)

// ListMCPServers returns all MCP server config names, sorted.
func (s *Store) ListMCPServers() ([]string, error) {
	return s.listNames(mcpDir, ".json")
}

// ReadMCPServer loads and normalizes an MCP server config by name.
func (s *Store) ReadMCPServer(name string) (*mcp.ServerConfig, error) {
	path := filepath.Join(s.dir(mcpDir), name+".json")
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithDetailf(errors.ErrNotFound, "MCP server %q", name)
		}
		return nil, errors.Wrapf(err, "reading MCP server %q", name)
	}
	cfg, err := mcp.Decode(name, data)
	return cfg, errors.Wrapf(err, "parsing MCP server %q", name)
}

// SaveMCPServer persists a server config keyed by its name. The cleaned
// form is written: defaults stripped so the file stays minimal.
func (s *Store) SaveMCPServer(cfg *mcp.ServerConfig) error {
	if err := CheckName(cfg.Name); err != nil {
		return err
	}

	dir, err := s.ensureDir(mcpDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, cfg.Name+".json")
	return errors.Wrapf(fileutil.WriteJSONAtomic(path, cfg), "saving MCP server %q", cfg.Name)
}

// SaveMCPServerRaw decodes a raw JSON config body, normalizes it, and
// persists it under name. Returns the normalized config.
func (s *Store) SaveMCPServerRaw(name string, data []byte) (*mcp.ServerConfig, error) {
	cfg, err := mcp.Decode(name, data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing MCP server %q", name)
	}
	if err := s.SaveMCPServer(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DeleteMCPServer removes a server config by name.
func (s *Store) DeleteMCPServer(name string) error {
	return s.remove(mcpDir, name+".json")
}
