// Package vcs shells out to git for the optional post-scaffold init and
// commit. Failures here are reported to the caller as warnings and must
// never be treated as a materialization failure.
package vcs

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Available checks that git is on PATH.
func Available() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}

// IsRepo reports whether dir is already inside a git work tree.
func IsRepo(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// Init initializes a new repository in dir.
func Init(dir string) error {
	if err := Available(); err != nil {
		return err
	}
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git init: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Commit stages everything in dir and commits with the given message.
func Commit(dir, message string) error {
	if err := Available(); err != nil {
		return err
	}

	cmd := exec.Command("git", "add", "-A")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git add: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	cmd = exec.Command("git", "commit", "-m", message)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// InitAndCommit initializes dir as a repository if needed, then stages and
// commits everything in it.
func InitAndCommit(dir, message string) error {
	if !IsRepo(dir) {
		if err := Init(dir); err != nil {
			return err
		}
	}
	return Commit(dir, message)
}
