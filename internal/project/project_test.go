package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMarkerRoundTrip(t *testing.T) {
	root := t.TempDir()

	if Exists(root) {
		t.Fatal("Exists() = true before Save")
	}

	in := &Marker{
		Project:      "acme",
		Description:  "An example project",
		Edition:      "hooks",
		Version:      "1.1.0",
		ScaffoldedAt: "2026-08-23",
	}
	if err := Save(root, in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if !Exists(root) {
		t.Error("Exists() = false after Save")
	}

	out, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *out != *in {
		t.Errorf("Load() = %+v, want %+v", out, in)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing marker")
	}
}

func TestLoadInvalid(t *testing.T) {
	root := t.TempDir()

	t.Run("malformed yaml", func(t *testing.T) {
		writeMarker(t, root, "{not yaml:")
		if _, err := Load(root); err == nil {
			t.Error("expected error for malformed marker")
		}
	})

	t.Run("missing edition", func(t *testing.T) {
		writeMarker(t, root, "project: acme\n")
		if _, err := Load(root); err == nil {
			t.Error("expected error for marker without edition")
		}
	})
}

func writeMarker(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ".groundwork.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
