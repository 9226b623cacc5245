package market

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/app"
	"agentdeck/internal/config"
	"agentdeck/internal/logging"
	"agentdeck/internal/marketplace"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(&config.Config{StoreDir: t.TempDir()}, logging.ForTest(t))
}

func TestSearch_BundledCatalog(t *testing.T) {
	a := newTestApp(t)
	var buf bytes.Buffer

	require.NoError(t, runSearch(context.Background(), a, &buf, marketplace.KindSkill, "review"))
	assert.Contains(t, buf.String(), "community/code-review")
}

func TestSearch_NoMatches(t *testing.T) {
	a := newTestApp(t)
	var buf bytes.Buffer

	require.NoError(t, runSearch(context.Background(), a, &buf, marketplace.KindSkill, "zzzzz"))
	assert.Contains(t, buf.String(), "No matches")
}

func TestInstall_SkillThenListedAsInstalled(t *testing.T) {
	a := newTestApp(t)
	var buf bytes.Buffer

	installCreds = nil
	require.NoError(t, runInstall(context.Background(), a, &buf, marketplace.KindSkill, "community/code-review"))
	assert.Contains(t, buf.String(), "Installed skill")

	_, err := a.Store.ReadSkill("code-review")
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, runSearch(context.Background(), a, &buf, marketplace.KindSkill, "code-review"))
	assert.Contains(t, buf.String(), "yes")

	// Installing again is a no-op.
	buf.Reset()
	require.NoError(t, runInstall(context.Background(), a, &buf, marketplace.KindSkill, "community/code-review"))
	assert.Contains(t, buf.String(), "already installed")
}

func TestInstall_UnknownID(t *testing.T) {
	a := newTestApp(t)

	installCreds = nil
	err := runInstall(context.Background(), a, &bytes.Buffer{}, marketplace.KindSkill, "community/nope")
	require.Error(t, err)
}

func TestInstall_MCPRequiresCredentials(t *testing.T) {
	a := newTestApp(t)

	installCreds = nil
	err := runInstall(context.Background(), a, &bytes.Buffer{}, marketplace.KindMCP, "community/github")
	require.Error(t, err)
	assert.ErrorIs(t, err, marketplace.ErrMissingCredentials)

	installCreds = []string{"GITHUB_PERSONAL_ACCESS_TOKEN=ghp_test"}
	t.Cleanup(func() { installCreds = nil })

	var buf bytes.Buffer
	require.NoError(t, runInstall(context.Background(), a, &buf, marketplace.KindMCP, "community/github"))

	cfg, err := a.Store.ReadMCPServer("github")
	require.NoError(t, err)
	assert.Equal(t, "ghp_test", cfg.Env["GITHUB_PERSONAL_ACCESS_TOKEN"])
}

func TestResolveKind(t *testing.T) {
	kindFlag = "mcp"
	t.Cleanup(func() { kindFlag = "skill" })

	kind, err := resolveKind()
	require.NoError(t, err)
	assert.Equal(t, marketplace.KindMCP, kind)

	kindFlag = "potato"
	_, err = resolveKind()
	require.Error(t, err)
}
