package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	t.Run("editor wins", func(t *testing.T) {
		t.Setenv("EDITOR", "nvim")
		t.Setenv("VISUAL", "code")
		if got := Detect(); got != "nvim" {
			t.Errorf("Detect() = %q, want nvim", got)
		}
	})

	t.Run("visual when editor unset", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "code")
		if got := Detect(); got != "code" {
			t.Errorf("Detect() = %q, want code", got)
		}
	})

	t.Run("fallback chain", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "")
		got := Detect()
		if _, err := exec.LookPath("nano"); err == nil {
			if got != "nano" {
				t.Errorf("Detect() = %q, want nano", got)
			}
		} else if got != "vi" {
			t.Errorf("Detect() = %q, want vi", got)
		}
	})
}

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script mock")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")
	outputFile := filepath.Join(tmpDir, "output.txt")
	script := "#!/bin/sh\necho \"$@\" > " + outputFile + "\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", mockEditor)

	target := filepath.Join(tmpDir, "target.md")
	if err := os.WriteFile(target, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Open(target); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), target) {
		t.Errorf("editor called with %q, want %q", string(got), target)
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	t.Setenv("EDITOR", "non-existent-binary-12345")
	t.Setenv("VISUAL", "")
	if err := Open("test.txt"); err == nil {
		t.Error("expected error for missing editor binary")
	}
}

func TestEditText(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script mock")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "append-editor.sh")
	script := "#!/bin/sh\necho edited >> \"$1\"\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", mockEditor)

	got, err := EditText("rule.md", []byte("original\n"))
	if err != nil {
		t.Fatalf("EditText() error = %v", err)
	}
	if string(got) != "original\nedited\n" {
		t.Errorf("EditText() = %q", got)
	}
}
