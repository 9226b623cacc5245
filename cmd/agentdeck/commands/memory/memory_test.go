package memory

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/app"
	"agentdeck/internal/config"
	"agentdeck/internal/logging"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(&config.Config{StoreDir: t.TempDir()}, logging.ForTest(t))
}

func resetBrowseFlags() {
	browseQuery = ""
	browseSort = "key"
	browseDesc = false
	browsePage = 1
}

func TestSetAndBrowse(t *testing.T) {
	a := newTestApp(t)
	resetBrowseFlags()
	t.Cleanup(resetBrowseFlags)

	var buf bytes.Buffer
	require.NoError(t, runSet(a, &buf, "web-app", "deploy.target", "staging cluster"))

	buf.Reset()
	require.NoError(t, runBrowse(a, &buf, "web-app"))

	out := buf.String()
	assert.Contains(t, out, "deploy.target")
	assert.Contains(t, out, "staging cluster")
	assert.Contains(t, out, "page 1/1 (1 total)")
}

func TestBrowse_Empty(t *testing.T) {
	a := newTestApp(t)
	resetBrowseFlags()
	t.Cleanup(resetBrowseFlags)

	var buf bytes.Buffer
	require.NoError(t, runBrowse(a, &buf, "web-app"))
	assert.Contains(t, buf.String(), "No memories")
}

func TestBrowse_QueryAndPaging(t *testing.T) {
	a := newTestApp(t)
	resetBrowseFlags()
	t.Cleanup(resetBrowseFlags)

	var buf bytes.Buffer
	for i := 0; i < 60; i++ {
		key := fmt.Sprintf("note.%03d", i)
		require.NoError(t, runSet(a, &buf, "web-app", key, "remember this"))
	}

	browsePage = 2
	buf.Reset()
	require.NoError(t, runBrowse(a, &buf, "web-app"))
	assert.Contains(t, buf.String(), "page 2/2 (60 total)")

	resetBrowseFlags()
	browseQuery = "note.059"
	buf.Reset()
	require.NoError(t, runBrowse(a, &buf, "web-app"))
	assert.Contains(t, buf.String(), "page 1/1 (1 total)")
}

func TestBrowse_RejectsUnknownSort(t *testing.T) {
	a := newTestApp(t)
	resetBrowseFlags()
	browseSort = "color"
	t.Cleanup(resetBrowseFlags)

	err := runBrowse(a, &bytes.Buffer{}, "web-app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort order")
}

func TestDeleteAndClear(t *testing.T) {
	a := newTestApp(t)
	var buf bytes.Buffer

	require.NoError(t, runSet(a, &buf, "web-app", "a", "1"))
	require.NoError(t, runSet(a, &buf, "web-app", "b", "2"))

	require.NoError(t, runDelete(a, &buf, "web-app", "a"))
	entries, err := a.Memory.Load("web-app")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, runClear(a, &buf, "web-app"))
	entries, err = a.Memory.Load("web-app")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
