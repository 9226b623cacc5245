package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/paths"
)

func TestAutodetect(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".claude", "skills", "deploy"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".claude", "skills", "deploy", "SKILL.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".claude", "skills", "review.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AGENTS.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mcp.json"),
		[]byte(`{"mcpServers":{"github":{},"search":{}}}`), 0o644))

	d, err := Autodetect(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{paths.AgentClaude, paths.AgentCodex}, d.Agents)
	assert.Equal(t, []string{"github", "search"}, d.MCPServers)
	assert.Equal(t, []string{"deploy", "review"}, d.Skills)
}

func TestAutodetect_EmptyProject(t *testing.T) {
	d, err := Autodetect(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, d.Agents)
	assert.Empty(t, d.MCPServers)
	assert.Empty(t, d.Skills)
}

func TestAutodetect_BadDir(t *testing.T) {
	_, err := Autodetect(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = Autodetect(file)
	assert.Error(t, err)
}

func TestAutodetect_MalformedMCPJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mcp.json"), []byte("{broken"), 0o644))

	d, err := Autodetect(dir)
	require.NoError(t, err, "malformed project files detect nothing, never fail")
	assert.Equal(t, []string{paths.AgentClaude}, d.Agents, ".mcp.json presence still implies claude")
	assert.Empty(t, d.MCPServers)
}
