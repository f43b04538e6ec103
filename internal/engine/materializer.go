package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Materializer writes resolved template entries under a target root. The
// filesystem is injected so tests can run against afero.MemMapFs; production
// callers use NewOS.
//
// Entries are processed synchronously, strictly in registration order.
// Failures are entry-scoped: one bad template or one permission error never
// aborts the rest of the run. The operation is not transactional - an
// interrupted run leaves a partially scaffolded tree, and re-running it is
// the recovery path.
type Materializer struct {
	fsys afero.Fs
}

// New returns a Materializer backed by the given filesystem.
func New(fsys afero.Fs) *Materializer {
	return &Materializer{fsys: fsys}
}

// NewOS returns a Materializer backed by the real filesystem.
func NewOS() *Materializer {
	return New(afero.NewOsFs())
}

// Materialize resolves and writes every entry of reg under root, applying
// each entry's conflict policy, and returns a Report in registration order.
//
// The only run-scoped failure is an invalid root: root exists as a
// non-directory, or is absent and cannot be created. Everything else is
// recorded per entry in the report.
func (m *Materializer) Materialize(root string, reg *Registry, bindings map[string]string) (*Report, error) {
	if info, err := m.fsys.Stat(root); err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("target root %s exists and is not a directory", root)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("inspecting target root %s: %w", root, err)
	} else if err := m.fsys.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("creating target root %s: %w", root, err)
	}

	report := &Report{Warnings: reg.Warnings()}
	for _, e := range reg.Entries() {
		report.Results = append(report.Results, m.apply(root, e, bindings))
	}
	return report, nil
}

// apply runs the per-entry state machine: Pending -> Created | Skipped |
// Overwritten | Failed. Single transition, no retries within one run.
func (m *Materializer) apply(root string, e Entry, bindings map[string]string) Result {
	fail := func(err error) Result {
		return Result{Path: e.Path, Outcome: Failed, Err: err}
	}

	if !filepath.IsLocal(e.Path) {
		return fail(&PathEscapeError{Path: e.Path})
	}

	body, err := Resolve(e.Body, bindings)
	if err != nil {
		return fail(err)
	}

	target := filepath.Join(root, filepath.FromSlash(e.Path))
	exists := false
	if info, err := m.fsys.Stat(target); err == nil {
		if info.IsDir() {
			return fail(&TypeMismatchError{Path: e.Path})
		}
		exists = true
	} else if !os.IsNotExist(err) {
		return fail(&IOError{Path: e.Path, Err: err})
	}

	if exists && e.Policy != OverwriteAlways {
		return Result{Path: e.Path, Outcome: Skipped}
	}

	if err := m.ensureParents(root, e.Path); err != nil {
		return fail(err)
	}
	if err := afero.WriteFile(m.fsys, target, []byte(body), filePerm); err != nil {
		return fail(&IOError{Path: e.Path, Err: err})
	}

	if exists {
		return Result{Path: e.Path, Outcome: Overwritten}
	}
	return Result{Path: e.Path, Outcome: Created}
}

// ensureParents creates the entry's parent directories. Creating an existing
// directory is not an error; an ancestor occupied by a regular file is a
// type mismatch, attributed to the offending ancestor. The ancestors are
// checked explicitly because not every afero backend rejects a file in the
// middle of an MkdirAll path.
func (m *Materializer) ensureParents(root, relPath string) error {
	dir := filepath.Dir(filepath.FromSlash(relPath))
	if dir == "." {
		return nil
	}
	segments := strings.Split(filepath.ToSlash(dir), "/")
	for i := range segments {
		ancestor := filepath.Join(segments[:i+1]...)
		info, err := m.fsys.Stat(filepath.Join(root, ancestor))
		if err != nil {
			break
		}
		if !info.IsDir() {
			return &TypeMismatchError{Path: filepath.ToSlash(ancestor)}
		}
	}
	if err := m.fsys.MkdirAll(filepath.Join(root, dir), dirPerm); err != nil {
		return &IOError{Path: relPath, Err: err}
	}
	return nil
}
