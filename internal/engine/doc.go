// Package engine implements the template materialization pipeline behind
// "groundwork init": a Registry of template entries, a strict placeholder
// resolver, and a Materializer that writes resolved entries under a target
// root according to each entry's conflict policy. The engine holds no state
// between runs; re-running it against the same root is safe and is the
// documented recovery path after a partial failure.
package engine
