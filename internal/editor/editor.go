// Package editor opens the user's preferred text editor, used by the
// edit subcommands for skills, rules, and templates.
package editor

import (
	"os"
	"os/exec"
	"path/filepath"

	"agentdeck/internal/errors"
)

// Open launches the editor on path, attached to the terminal.
func Open(path string) error {
	cmd := exec.Command(Detect(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return errors.Wrap(cmd.Run(), "running editor")
}

// EditText writes content to a temp file, opens the editor on it, and
// returns the edited content. The temp file is removed afterwards.
func EditText(name string, content []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "agentdeck-edit-*")
	if err != nil {
		return nil, errors.Wrap(err, "creating edit buffer")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, errors.Wrap(err, "writing edit buffer")
	}
	if err := Open(path); err != nil {
		return nil, err
	}
	edited, err := os.ReadFile(path)
	return edited, errors.Wrap(err, "reading edit buffer")
}

// Detect returns the editor command: $EDITOR, then $VISUAL, then nano
// if installed, then vi.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
