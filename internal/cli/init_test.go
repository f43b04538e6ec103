package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/groundwork-labs/groundwork/internal/engine"
)

func TestOutcomeLine(t *testing.T) {
	tests := []struct {
		name string
		res  engine.Result
		want string
	}{
		{"created", engine.Result{Path: "AGENTS.md", Outcome: engine.Created}, "[ OK ] created AGENTS.md"},
		{"overwritten", engine.Result{Path: "AGENTS.md", Outcome: engine.Overwritten}, "[ OK ] updated AGENTS.md"},
		{"skipped", engine.Result{Path: "agents/state.md", Outcome: engine.Skipped}, "[SKIP] agents/state.md already exists"},
		{"failed", engine.Result{Path: "x.md", Outcome: engine.Failed, Err: errors.New("boom")}, "[FAIL] x.md: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outcomeLine(tt.res)
			if !strings.Contains(got, tt.want) {
				t.Errorf("outcomeLine() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestResolveEdition(t *testing.T) {
	t.Run("explicit flag", func(t *testing.T) {
		ed, err := resolveEdition("core")
		if err != nil {
			t.Fatalf("resolveEdition() error: %v", err)
		}
		if ed.Name != "core" {
			t.Errorf("Name = %q, want core", ed.Name)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, err := resolveEdition("bogus"); err == nil {
			t.Error("expected error for unknown edition")
		}
	})
}

func TestCommitMessageDefault(t *testing.T) {
	ed, err := resolveEdition("hooks")
	if err != nil {
		t.Fatalf("resolveEdition() error: %v", err)
	}
	msg := commitMessage(ed)
	if !strings.Contains(msg, "hooks") || !strings.Contains(msg, "1.1.0") {
		t.Errorf("commitMessage() = %q, want edition name and version", msg)
	}
}
