//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/groundwork-labs/groundwork/internal/edition"
	"github.com/groundwork-labs/groundwork/internal/engine"
)

// scaffoldEdition materializes the named edition into a fresh temp root on
// the real filesystem and returns the root and the report.
func scaffoldEdition(t *testing.T, name, projectName string) (string, *engine.Report, *edition.Edition) {
	t.Helper()

	ed, err := edition.Load(name)
	if err != nil {
		t.Fatalf("loading edition %s: %v", name, err)
	}

	root := t.TempDir()
	bindings := ed.Bindings(projectName, "Integration test project", time.Now())
	report, err := engine.NewOS().Materialize(root, ed.Registry(), bindings)
	if err != nil {
		t.Fatalf("materializing %s: %v", name, err)
	}
	return root, report, ed
}

func readScaffolded(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertAllOutcome(t *testing.T, report *engine.Report, want engine.Outcome) {
	t.Helper()
	for _, res := range report.Results {
		if res.Outcome != want {
			t.Errorf("%s = %v, want %v (err: %v)", res.Path, res.Outcome, want, res.Err)
		}
	}
}
