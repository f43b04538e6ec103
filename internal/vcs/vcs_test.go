package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestIsRepoOnPlainDir(t *testing.T) {
	if IsRepo(t.TempDir()) {
		t.Error("IsRepo() = true for a plain temp directory")
	}
}

func TestInitAndCommit(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "AGENTS.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Commit identity may be unconfigured on CI machines.
	t.Setenv("GIT_AUTHOR_NAME", "test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	if err := InitAndCommit(dir, "scaffold conventions"); err != nil {
		t.Fatalf("InitAndCommit() error: %v", err)
	}

	if !IsRepo(dir) {
		t.Error("IsRepo() = false after InitAndCommit")
	}

	// A second InitAndCommit with nothing staged should fail at commit;
	// verify it does not re-init and reports the git error.
	if err := InitAndCommit(dir, "empty"); err == nil {
		t.Error("expected error committing with no changes")
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}
