package template

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/app"
	"agentdeck/internal/config"
	"agentdeck/internal/logging"
	"agentdeck/internal/store"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(&config.Config{StoreDir: t.TempDir()}, logging.ForTest(t))
}

func TestAddShowRemove(t *testing.T) {
	a := newTestApp(t)

	path := filepath.Join(t.TempDir(), "tpl.md")
	require.NoError(t, os.WriteFile(path, []byte("# {{name}}\n\nInstructions.\n"), 0o644))

	addFromFile = path
	t.Cleanup(func() { addFromFile = "" })

	var buf bytes.Buffer
	require.NoError(t, runAdd(a, &buf, "default"))

	buf.Reset()
	require.NoError(t, runShow(a, &buf, "default"))
	assert.Contains(t, buf.String(), "Instructions.")

	buf.Reset()
	require.NoError(t, runList(a, &buf))
	assert.Contains(t, buf.String(), "default")

	require.NoError(t, runRemove(a, &buf, "default"))
	_, err := a.Store.ReadTemplate("default")
	require.Error(t, err)
}

func TestAdd_DuplicateRejected(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveTemplate(&store.Template{Name: "default", Content: "x"}))

	addFromFile = filepath.Join(t.TempDir(), "nope.md")
	t.Cleanup(func() { addFromFile = "" })

	err := runAdd(a, &bytes.Buffer{}, "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
