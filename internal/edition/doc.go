// Package edition ships the built-in scaffold editions: named, versioned
// bundles of convention templates embedded into the binary. Each edition
// directory holds an edition.yaml manifest (validated against a JSON Schema)
// and the template bodies it references. Loading an edition produces an
// engine.Registry ready for materialization, so adding a new edition is pure
// data with no engine changes.
package edition
