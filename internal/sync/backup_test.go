package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"a":1}`), 0o644))

	snap, err := Snapshot(dir, src)
	require.NoError(t, err)
	require.NotEmpty(t, snap)

	data, err := os.ReadFile(snap)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	// Missing source and disabled backups are both quiet no-ops.
	snap, err = Snapshot(dir, filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, snap)

	snap, err = Snapshot("", src)
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestListAndPruneBackups(t *testing.T) {
	dir := t.TempDir()

	// Stamped names spanning two originals plus junk to ignore.
	files := map[string]string{
		"settings.json-20260101T090000.bak": "one",
		"settings.json-20260102T090000.bak": "two",
		"settings.json-20260103T090000.bak": "three",
		"config.toml-20260101T090000.bak":   "toml",
		"notes.txt":                         "ignored",
		"badname.bak":                       "ignored",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	backups, err := ListBackups(dir)
	require.NoError(t, err)
	require.Len(t, backups, 4)
	assert.Equal(t, "settings.json-20260103T090000.bak", backups[0].Name, "newest first")
	assert.Equal(t, "settings.json", backups[0].Original)

	removed, err := PruneBackups(dir, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed, "keep one per original")

	backups, err = ListBackups(dir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	for _, b := range backups {
		assert.NotEqual(t, "one", b.Name)
	}

	// Missing directory lists empty.
	backups, err = ListBackups(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}
