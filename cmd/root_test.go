package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func readTodoFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading todo file: %v", err)
	}
	return string(data)
}

func TestCommandSurface(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "todo.txt")

	t.Run("bare invocation adds a task", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "write", "spec"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if got := readTodoFile(t, path); got != "- [ ] write spec\n" {
			t.Errorf("file: %q", got)
		}
	})

	t.Run("empty note is rejected", func(t *testing.T) {
		before := readTodoFile(t, path)
		if err := runCommand(t, "--file", path, ""); err == nil {
			t.Error("expected error for empty note")
		}
		if err := runCommand(t, "--file", path, " ", "  "); err == nil {
			t.Error("expected error for whitespace-only note")
		}
		if got := readTodoFile(t, path); got != before {
			t.Errorf("file changed by rejected add: %q", got)
		}
	})

	t.Run("check marks the task done", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "check", "1"); err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if got := readTodoFile(t, path); got != "- [x] write spec\n" {
			t.Errorf("file: %q", got)
		}
	})

	t.Run("undo reopens the task", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "undo", "1"); err != nil {
			t.Fatalf("undo failed: %v", err)
		}
		if got := readTodoFile(t, path); got != "- [ ] write spec\n" {
			t.Errorf("file: %q", got)
		}
	})

	t.Run("out-of-range index is not an error", func(t *testing.T) {
		before := readTodoFile(t, path)
		if err := runCommand(t, "--file", path, "check", "99"); err != nil {
			t.Fatalf("out-of-range check errored: %v", err)
		}
		if got := readTodoFile(t, path); got != before {
			t.Errorf("file changed: %q", got)
		}
	})

	t.Run("non-integer index is fatal", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "check", "first"); err == nil {
			t.Error("expected error for non-integer index")
		}
	})

	t.Run("cleanup drops done tasks", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "keep", "me"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := runCommand(t, "--file", path, "check", "1"); err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if err := runCommand(t, "--file", path, "cleanup"); err != nil {
			t.Fatalf("cleanup failed: %v", err)
		}
		if got := readTodoFile(t, path); got != "- [ ] keep me\n" {
			t.Errorf("file: %q", got)
		}
	})

	t.Run("clear empties the file", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "clear"); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		if got := readTodoFile(t, path); got != "" {
			t.Errorf("file: %q", got)
		}
	})

	t.Run("ls works on an empty list", func(t *testing.T) {
		if err := runCommand(t, "--file", path, "ls"); err != nil {
			t.Fatalf("ls failed: %v", err)
		}
		if err := runCommand(t, "--file", path, "ls", "--all"); err != nil {
			t.Fatalf("ls --all failed: %v", err)
		}
	})
}

func TestMalformedFileAborts(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("not a task\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := runCommand(t, "--file", path, "ls"); err == nil {
		t.Error("expected error for malformed todo file")
	}
}

func TestParseIndex(t *testing.T) {
	if _, err := parseIndex("3"); err != nil {
		t.Errorf("parseIndex(3) failed: %v", err)
	}
	if _, err := parseIndex("-1"); err != nil {
		t.Errorf("negative index should parse (and no-op downstream): %v", err)
	}
	if _, err := parseIndex("abc"); err == nil {
		t.Error("expected error for non-integer index")
	}
}
