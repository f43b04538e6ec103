package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/groundwork-labs/groundwork/internal/config"
	"github.com/groundwork-labs/groundwork/internal/edition"
	"github.com/groundwork-labs/groundwork/internal/engine"
	"github.com/groundwork-labs/groundwork/internal/project"
	"github.com/groundwork-labs/groundwork/internal/vcs"
)

var (
	initName        string
	initDescription string
	initEdition     string
	initGit         bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (default: target directory name)")
	initCmd.Flags().StringVar(&initDescription, "description", "", "One-line project description")
	initCmd.Flags().StringVar(&initEdition, "edition", "", "Edition to scaffold (default: config default_edition, else the latest)")
	initCmd.Flags().BoolVar(&initGit, "git", false, "Initialize a git repository and commit the scaffolded files")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [target]",
	Short: "Scaffold assistant conventions into a directory",
	Long: `Scaffold an AI-assistant conventions tree into the target directory
(default: the current directory) from a named edition.

Files the edition marks as user-owned (the state tracker, local settings)
are never overwritten; re-running init is safe and refreshes only the
managed files.

Examples:
  groundwork init --name acme --description "Payments service"
  groundwork init ./acme --edition core
  groundwork init ./acme --git`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}

		ed, err := resolveEdition(initEdition)
		if err != nil {
			return err
		}

		name := initName
		if name == "" {
			abs, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("resolving target path: %w", err)
			}
			name = filepath.Base(abs)
		}

		now := time.Now()
		bindings := ed.Bindings(name, initDescription, now)

		fmt.Printf("Scaffolding %s (%s edition %s) into %s\n", name, ed.Name, ed.Version, target)

		report, err := engine.NewOS().Materialize(target, ed.Registry(), bindings)
		if err != nil {
			return err
		}
		printReport(report)

		marker := &project.Marker{
			Project:      name,
			Description:  initDescription,
			Edition:      ed.Name,
			Version:      ed.Version.String(),
			ScaffoldedAt: now.Format("2006-01-02"),
		}
		if err := project.Save(target, marker); err != nil {
			return err
		}

		if initGit {
			if err := vcs.InitAndCommit(target, commitMessage(ed)); err != nil {
				// A VCS failure is not a materialization failure.
				fmt.Fprintf(os.Stderr, "Warning: git commit failed: %v\n", err)
			} else {
				fmt.Println("Committed scaffolded files to git.")
			}
		}

		if failed := report.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d of %d files failed", len(failed), len(report.Results))
		}
		fmt.Printf("\nDone. Review AGENTS.md, then run '%s status' to check the tree later.\n", rootCmd.Use)
		return nil
	},
}

// resolveEdition picks the edition from the flag, the config default, or
// falls back to the highest-versioned embedded edition.
func resolveEdition(flag string) (*edition.Edition, error) {
	if flag != "" {
		return edition.Load(flag)
	}
	if name := config.Get(config.KeyDefaultEdition); name != "" {
		return edition.Load(name)
	}
	return edition.Latest()
}

// commitMessage returns the configured commit message, or a default naming
// the edition.
func commitMessage(ed *edition.Edition) string {
	if msg := config.Get(config.KeyCommitMessage); msg != "" {
		return msg
	}
	return fmt.Sprintf("Scaffold assistant conventions (%s %s)", ed.Name, ed.Version)
}

func printReport(report *engine.Report) {
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	for _, res := range report.Results {
		fmt.Println(outcomeLine(res))
	}
}

func outcomeLine(res engine.Result) string {
	switch res.Outcome {
	case engine.Created:
		return fmt.Sprintf("  [ OK ] created %s", res.Path)
	case engine.Overwritten:
		return fmt.Sprintf("  [ OK ] updated %s", res.Path)
	case engine.Skipped:
		return fmt.Sprintf("  [SKIP] %s already exists", res.Path)
	case engine.Failed:
		return fmt.Sprintf("  [FAIL] %s: %v", res.Path, res.Err)
	default:
		return fmt.Sprintf("  [ ?? ] %s", res.Path)
	}
}
