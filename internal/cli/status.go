package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/groundwork-labs/groundwork/internal/branding"
	"github.com/groundwork-labs/groundwork/internal/edition"
	"github.com/groundwork-labs/groundwork/internal/engine"
	"github.com/groundwork-labs/groundwork/internal/project"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status [target]",
	Short: "Check a scaffolded tree against its edition",
	Long: `Compare a scaffolded directory (default: the current directory) against
the edition recorded in its .groundwork.yaml marker: which managed files are
missing or locally modified, and whether this binary ships a newer version
of the edition.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}

		if !project.Exists(target) {
			return fmt.Errorf("%s is not scaffolded: run '%s init' first", target, branding.CLIName())
		}
		marker, err := project.Load(target)
		if err != nil {
			return err
		}

		ed, err := edition.Load(marker.Edition)
		if err != nil {
			return fmt.Errorf("edition %q recorded in the marker is not in this binary: %w", marker.Edition, err)
		}

		fmt.Printf("%s - %s edition %s, scaffolded %s\n\n", marker.Project, marker.Edition, marker.Version, marker.ScaffoldedAt)

		bindings := statusBindings(marker, ed)
		missing, modified := 0, 0
		for _, entry := range ed.Registry().Entries() {
			state, err := entryState(target, entry, bindings)
			if err != nil {
				return err
			}
			switch state {
			case "missing":
				missing++
			case "modified":
				modified++
			}
			fmt.Printf("  %-9s %s\n", state, entry.Path)
		}

		fmt.Println()
		if missing > 0 {
			fmt.Printf("%d file(s) missing - re-run '%s init' to restore them.\n", missing, branding.CLIName())
		}
		if modified > 0 {
			fmt.Printf("%d managed file(s) modified locally - '%s init' would overwrite them.\n", modified, branding.CLIName())
		}

		recorded, err := semver.NewVersion(marker.Version)
		if err == nil && recorded.LessThan(ed.Version) {
			fmt.Printf("Edition %s is now at %s (scaffolded with %s) - re-run '%s init' to update.\n",
				ed.Name, ed.Version, recorded, branding.CLIName())
		}
		if missing == 0 && modified == 0 {
			fmt.Println("Tree is intact.")
		}
		return nil
	},
}

// statusBindings rebuilds the bindings of the original run so managed files
// can be compared byte for byte: the date and edition version come from the
// marker, not from today.
func statusBindings(marker *project.Marker, ed *edition.Edition) map[string]string {
	bindings := ed.Bindings(marker.Project, marker.Description, time.Now())
	bindings[edition.VarDate] = marker.ScaffoldedAt
	bindings[edition.VarEditionVersion] = marker.Version
	return bindings
}

// entryState classifies one managed file: missing, present, ok, or modified.
// Content is only compared for overwrite-managed files; user-owned files
// (create/skip policies) count as present regardless of content.
func entryState(root string, entry engine.Entry, bindings map[string]string) (string, error) {
	path := filepath.Join(root, filepath.FromSlash(entry.Path))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "missing", nil
		}
		return "", fmt.Errorf("reading %s: %w", entry.Path, err)
	}

	if entry.Policy != engine.OverwriteAlways {
		return "present", nil
	}

	expected, err := engine.Resolve(entry.Body, bindings)
	if err != nil {
		return "", fmt.Errorf("resolving expected content of %s: %w", entry.Path, err)
	}
	if bytes.Equal(data, []byte(expected)) {
		return "ok", nil
	}
	return "modified", nil
}
