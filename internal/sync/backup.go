package sync

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"agentdeck/internal/errors"
	"agentdeck/pkg/fileutil"
)

// backupStamp is the timestamp layout embedded in backup file names.
const backupStamp = "20060102T150405"

// Backup describes one snapshot in the backup directory.
type Backup struct {
	// Name is the backup file name: <original>-<stamp>.bak.
	Name string `json:"name"`
	// Original is the base name of the file the snapshot came from.
	Original string `json:"original"`
	Path     string `json:"path"`
	Time     time.Time `json:"time"`
	Size     int64     `json:"size"`
}

// Snapshot copies the file at path into dir before it gets rewritten.
// A missing source or empty dir is a no-op. Returns the snapshot path.
func Snapshot(dir, path string) (string, error) {
	if dir == "" {
		return "", nil
	}
	data, err := fileutil.ReadLimited(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading %s for backup", path)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}
	name := filepath.Base(path) + "-" + time.Now().UTC().Format(backupStamp) + ".bak"
	dst := filepath.Join(dir, name)
	if err := fileutil.WriteAtomic(dst, data, 0o600); err != nil {
		return "", errors.Wrapf(err, "writing backup of %s", path)
	}
	return dst, nil
}

// ListBackups returns all snapshots in dir, newest first. A missing
// directory yields an empty list.
func ListBackups(dir string) ([]Backup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var backups []Backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".bak") {
			continue
		}
		original, stamp, ok := splitBackupName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Backup{
			Name:     entry.Name(),
			Original: original,
			Path:     filepath.Join(dir, entry.Name()),
			Time:     stamp,
			Size:     info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Time.Equal(backups[j].Time) {
			return backups[i].Time.After(backups[j].Time)
		}
		return backups[i].Name < backups[j].Name
	})
	return backups, nil
}

// PruneBackups keeps the newest keep snapshots per original file and
// deletes the rest. Returns how many were removed.
func PruneBackups(dir string, keep int) (int, error) {
	if keep < 0 {
		return 0, errors.New("keep must be non-negative")
	}
	backups, err := ListBackups(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	perOriginal := make(map[string]int)
	for _, b := range backups {
		perOriginal[b.Original]++
		if perOriginal[b.Original] <= keep {
			continue
		}
		if err := os.Remove(b.Path); err != nil {
			return removed, errors.Wrapf(err, "removing backup %s", b.Name)
		}
		removed++
	}
	return removed, nil
}

// splitBackupName parses "<original>-<stamp>.bak".
func splitBackupName(name string) (original string, stamp time.Time, ok bool) {
	trimmed := strings.TrimSuffix(name, ".bak")
	i := strings.LastIndex(trimmed, "-")
	if i <= 0 {
		return "", time.Time{}, false
	}
	t, err := time.Parse(backupStamp, trimmed[i+1:])
	if err != nil {
		return "", time.Time{}, false
	}
	return trimmed[:i], t, true
}
