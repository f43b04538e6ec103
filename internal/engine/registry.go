package engine

import "fmt"

// Policy governs what happens when an entry's target path already exists.
type Policy int

const (
	// OverwriteAlways writes the entry unconditionally.
	OverwriteAlways Policy = iota
	// CreateIfAbsent writes the entry only when the target is absent.
	CreateIfAbsent
	// SkipIfPresent behaves like CreateIfAbsent at runtime but communicates
	// that presence is expected (a local-override file a user may have
	// customized), not an anomaly.
	SkipIfPresent
)

func (p Policy) String() string {
	switch p {
	case OverwriteAlways:
		return "overwrite"
	case CreateIfAbsent:
		return "create"
	case SkipIfPresent:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Entry is one file to be produced: a root-relative path, a template body
// with zero or more {{NAME}} placeholders, and a conflict policy.
type Entry struct {
	Path   string
	Body   string
	Policy Policy
}

// Registry holds the entries of one scaffold edition in registration order.
// Registration order is significant: it fixes the report order and
// guarantees parents-before-children when editions list directories
// top-down. A Registry performs no I/O.
type Registry struct {
	entries  []Entry
	index    map[string]int
	warnings []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds an entry. Registering a path twice replaces the earlier
// entry in place (last registration wins, original position kept) and
// records a warning.
func (r *Registry) Register(e Entry) {
	if i, ok := r.index[e.Path]; ok {
		r.warnings = append(r.warnings, fmt.Sprintf("duplicate template path %q: later registration wins", e.Path))
		r.entries[i] = e
		return
	}
	r.index[e.Path] = len(r.entries)
	r.entries = append(r.entries, e)
}

// Entries returns the registered entries in registration order. The
// returned slice is a copy; calling Entries twice yields the same sequence.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Warnings returns catalog-level warnings collected during registration.
func (r *Registry) Warnings() []string {
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.entries) }
