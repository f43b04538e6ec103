//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/groundwork-labs/groundwork/internal/edition"
	"github.com/groundwork-labs/groundwork/internal/engine"
	"github.com/groundwork-labs/groundwork/internal/project"
)

func TestScaffoldCoreEdition(t *testing.T) {
	root, report, _ := scaffoldEdition(t, "core", "acme")

	assertAllOutcome(t, report, engine.Created)

	instructions := readScaffolded(t, root, "AGENTS.md")
	assertContains(t, instructions, "# acme - assistant instructions")
	assertContains(t, instructions, "Integration test project")
	assertContains(t, instructions, "core edition (1.0.0)")

	rules := readScaffolded(t, root, "agents/rules.md")
	assertContains(t, rules, "# acme - rules")

	state := readScaffolded(t, root, "agents/state.md")
	assertContains(t, state, "Scaffolded project conventions")
}

func TestScaffoldCompleteEdition(t *testing.T) {
	root, report, ed := scaffoldEdition(t, "complete", "acme")

	assertAllOutcome(t, report, engine.Created)
	if got, want := len(report.Results), ed.Registry().Len(); got != want {
		t.Fatalf("got %d results, want %d", got, want)
	}

	ci := readScaffolded(t, root, ".github/workflows/conventions-ci.yml")
	assertContains(t, ci, "name: conventions")
	// The Actions expression must survive as a literal after resolution.
	assertContains(t, ci, "${{ github.ref }}")
	assertContains(t, ci, "CI check for acme")

	hooks := readScaffolded(t, root, "agents/hooks.json")
	assertContains(t, hooks, `"project": "acme"`)

	reviewer := readScaffolded(t, root, "agents/subagents/reviewer.md")
	assertContains(t, reviewer, "Reviewer subagent")
}

func TestRescaffoldPreservesUserFiles(t *testing.T) {
	root, _, ed := scaffoldEdition(t, "hooks", "acme")

	// User customizes the state tracker and local settings between runs.
	statePath := filepath.Join(root, "agents", "state.md")
	if err := os.WriteFile(statePath, []byte("user notes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	settingsPath := filepath.Join(root, "agents", "settings.local.json")
	if err := os.WriteFile(settingsPath, []byte(`{"custom": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	bindings := ed.Bindings("acme", "Integration test project", time.Now())
	report, err := engine.NewOS().Materialize(root, ed.Registry(), bindings)
	if err != nil {
		t.Fatalf("re-materializing: %v", err)
	}

	for _, res := range report.Results {
		switch res.Path {
		case "agents/state.md", "agents/settings.local.json":
			if res.Outcome != engine.Skipped {
				t.Errorf("%s = %v, want skipped", res.Path, res.Outcome)
			}
		default:
			if res.Outcome != engine.Overwritten {
				t.Errorf("%s = %v, want overwritten", res.Path, res.Outcome)
			}
		}
	}

	if got := readScaffolded(t, root, "agents/state.md"); got != "user notes\n" {
		t.Errorf("state.md = %q, want user content preserved", got)
	}
	if got := readScaffolded(t, root, "agents/settings.local.json"); got != `{"custom": true}` {
		t.Errorf("settings.local.json = %q, want user content preserved", got)
	}
}

func TestMarkerRecordsScaffoldRun(t *testing.T) {
	root, _, ed := scaffoldEdition(t, "core", "acme")

	in := &project.Marker{
		Project:      "acme",
		Description:  "Integration test project",
		Edition:      ed.Name,
		Version:      ed.Version.String(),
		ScaffoldedAt: time.Now().Format("2006-01-02"),
	}
	if err := project.Save(root, in); err != nil {
		t.Fatalf("saving marker: %v", err)
	}

	out, err := project.Load(root)
	if err != nil {
		t.Fatalf("loading marker: %v", err)
	}
	if out.Edition != "core" || out.Version != "1.0.0" {
		t.Errorf("marker = %+v, want core/1.0.0", out)
	}

	// The recorded edition must be loadable from the same binary.
	if _, err := edition.Load(out.Edition); err != nil {
		t.Errorf("marker edition does not load: %v", err)
	}
}

func TestEveryEditionScaffoldsCleanly(t *testing.T) {
	names, err := edition.Names()
	if err != nil {
		t.Fatalf("listing editions: %v", err)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, report, _ := scaffoldEdition(t, name, "probe")
			if report.HasFailures() {
				t.Errorf("edition %s had failures: %+v", name, report.Failed())
			}
			if len(report.Warnings) != 0 {
				t.Errorf("edition %s produced warnings: %v", name, report.Warnings)
			}
		})
	}
}
