// Package fileutil provides filesystem helpers shared by the entity stores
// and agent adapters, including atomic write operations.
package fileutil

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"agentdeck/internal/errors"
)

// MaxFileSize is the largest file the stores will read (1MB). Entity files
// are small; anything bigger is either corrupt or not ours.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// WriteAtomic writes data to path via a temp file in the same directory and
// an atomic rename, so an interrupted write never leaves a truncated file.
// The caller must ensure the parent directory exists.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".agentdeck-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}

// WriteJSONAtomic writes v as 2-space-indented JSON with a trailing newline.
// Files are created with 0644 permissions.
func WriteJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	data = append(data, '\n')
	return WriteAtomic(path, data, 0o644)
}

// WriteYAMLAtomic writes v as YAML with a trailing newline.
// Files are created with 0644 permissions.
func WriteYAMLAtomic(path string, v any) (err error) {
	// yaml.Marshal panics on unmarshalable types; turn that into an error.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return WriteAtomic(path, data, 0o644)
}

// ReadLimited reads a file up to MaxFileSize, returning ErrFileTooLarge for
// anything bigger.
func ReadLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// ReadJSON reads path and unmarshals it into v.
func ReadJSON(path string, v any) error {
	data, err := ReadLimited(path)
	if err != nil {
		return err
	}
	return errors.Wrapf(json.Unmarshal(data, v), "parsing %s", filepath.Base(path))
}
