// Package cli wires the cobra command tree: init (scaffold a target
// directory from an edition), editions (list and inspect the embedded
// editions), status (compare a scaffolded tree against its edition),
// config, and version.
package cli
