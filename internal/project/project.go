// Package project reads and writes the .groundwork.yaml marker that records
// how a directory was scaffolded. The status command uses it to re-derive
// the variable bindings of the original run and to detect when a newer
// edition version ships with the current binary.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const markerFile = ".groundwork.yaml"

// Marker is the persisted record of a scaffold run.
type Marker struct {
	Project      string `yaml:"project"`
	Description  string `yaml:"description,omitempty"`
	Edition      string `yaml:"edition"`
	Version      string `yaml:"version"`
	ScaffoldedAt string `yaml:"scaffolded_at"` // YYYY-MM-DD
}

// MarkerPath returns the full path to the marker inside a scaffolded root.
func MarkerPath(root string) string {
	return filepath.Join(root, markerFile)
}

// Exists reports whether root carries a scaffold marker.
func Exists(root string) bool {
	_, err := os.Stat(MarkerPath(root))
	return err == nil
}

// Load reads and parses the marker from the given root.
func Load(root string) (*Marker, error) {
	data, err := os.ReadFile(MarkerPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading scaffold marker: %w", err)
	}

	var m Marker
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing scaffold marker: %w", err)
	}
	if m.Edition == "" {
		return nil, fmt.Errorf("scaffold marker %s has no edition", MarkerPath(root))
	}
	return &m, nil
}

// Save writes the marker into the given root.
func Save(root string, m *Marker) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling scaffold marker: %w", err)
	}
	if err := os.WriteFile(MarkerPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing scaffold marker: %w", err)
	}
	return nil
}
