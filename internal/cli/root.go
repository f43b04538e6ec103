package cli

import (
	"github.com/spf13/cobra"

	"github.com/groundwork-labs/groundwork/internal/branding"
	"github.com/groundwork-labs/groundwork/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a project-conventions tree for AI coding assistants
(instructions, rules, state tracker, hooks, CI check) from a named edition,
and keeps an existing tree in sync with the edition it was scaffolded from.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
