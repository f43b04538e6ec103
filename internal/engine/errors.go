package engine

import "fmt"

// UnboundPlaceholderError reports a placeholder in a template body that has
// no matching binding. The affected entry is never written: a raw token
// leaking into a committed file is worse than failing the entry.
type UnboundPlaceholderError struct {
	Name string
}

func (e *UnboundPlaceholderError) Error() string {
	return fmt.Sprintf("unbound placeholder {{%s}}", e.Name)
}

// PathEscapeError reports a template path that would resolve outside the
// target root. Never auto-corrected.
type PathEscapeError struct {
	Path string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("template path %q escapes the target root", e.Path)
}

// TypeMismatchError reports a filesystem entry of an unexpected kind at a
// target path (a directory where a file was expected, or a file occupying
// a required parent directory).
type TypeMismatchError struct {
	Path string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("unexpected filesystem entry kind at %q", e.Path)
}

// IOError wraps an OS-level filesystem failure for one entry.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
