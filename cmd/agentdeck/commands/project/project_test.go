package project

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentdeck/internal/app"
	"agentdeck/internal/config"
	"agentdeck/internal/logging"
	"agentdeck/internal/session"
	"agentdeck/internal/store"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()
	a := app.New(&config.Config{StoreDir: dir}, logging.ForTest(t))
	a.Session = session.NewStore(filepath.Join(dir, "session.json"))
	return a
}

func TestList_Empty(t *testing.T) {
	a := newTestApp(t)
	var buf bytes.Buffer

	require.NoError(t, runList(a, &buf))
	assert.Contains(t, buf.String(), "No projects")
}

func TestList_ShowsCounts(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{
		Name:       "web-app",
		Directory:  "/src/web-app",
		Skills:     []string{"review", "deploy"},
		MCPServers: []string{"github"},
		Agents:     []string{"claude"},
	}))

	var buf bytes.Buffer
	require.NoError(t, runList(a, &buf))

	out := buf.String()
	assert.Contains(t, out, "web-app")
	assert.Contains(t, out, "/src/web-app")
}

func TestAdd_DuplicateRejected(t *testing.T) {
	a := newTestApp(t)
	var buf bytes.Buffer

	require.NoError(t, runAdd(a, &buf, "api"))
	err := runAdd(a, &buf, "api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAdd_DetectRequiresDirectory(t *testing.T) {
	a := newTestApp(t)
	addDetect = true
	t.Cleanup(func() { addDetect = false })

	err := runAdd(a, &bytes.Buffer{}, "api")
	require.Error(t, err)
}

func TestShow_RemembersSelection(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{
		Name:        "web-app",
		Description: "frontend",
		Skills:      []string{"review"},
	}))

	var buf bytes.Buffer
	require.NoError(t, runShow(a, &buf, "web-app"))

	out := buf.String()
	assert.Contains(t, out, "web-app")
	assert.Contains(t, out, "frontend")
	assert.Contains(t, out, "review")
	assert.Equal(t, "web-app", a.Session.Load().LastProject)
}

func TestShow_TitleUsesActiveTheme(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "web-app"}))

	var buf bytes.Buffer
	require.NoError(t, runShow(a, &buf, "web-app"))

	// The title line carries the palette's escape codes.
	title, _, _ := strings.Cut(buf.String(), "\n")
	assert.Contains(t, title, "\x1b[")
	assert.Contains(t, title, "web-app")
}

func TestRemove(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "api"}))

	var buf bytes.Buffer
	require.NoError(t, runRemove(a, &buf, "api"))

	_, err := a.Store.ReadProject("api")
	require.Error(t, err)
}

func TestCurrent_FallsBackToFirstProject(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "beta"}))
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "alpha"}))

	var buf bytes.Buffer
	require.NoError(t, runCurrent(a, &buf))
	assert.Equal(t, "alpha", strings.TrimSpace(buf.String()))
}

func TestCurrent_PrefersRemembered(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "alpha"}))
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "beta"}))
	require.NoError(t, a.Session.SetLastProject("beta"))

	var buf bytes.Buffer
	require.NoError(t, runCurrent(a, &buf))
	assert.Equal(t, "beta", strings.TrimSpace(buf.String()))
}

func TestCurrent_IgnoresDeletedProject(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveProject(&store.Project{Name: "alpha"}))
	require.NoError(t, a.Session.SetLastProject("gone"))

	var buf bytes.Buffer
	require.NoError(t, runCurrent(a, &buf))
	assert.Equal(t, "alpha", strings.TrimSpace(buf.String()))
}
