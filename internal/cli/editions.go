package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/groundwork-labs/groundwork/internal/edition"
)

func init() {
	editionsCmd.AddCommand(editionsShowCmd)
	rootCmd.AddCommand(editionsCmd)
}

var editionsCmd = &cobra.Command{
	Use:   "editions",
	Short: "List the embedded scaffold editions",
	Long:  `List every scaffold edition embedded in this binary, lowest version first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		editions, err := edition.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tFILES\tDESCRIPTION")
		for _, e := range editions {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.Name, e.Version, e.Registry().Len(), e.Description)
		}
		return w.Flush()
	},
}

var editionsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the files an edition scaffolds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := edition.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s - %s\n\n", e.Name, e.Version, e.Description)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tPOLICY")
		for _, entry := range e.Registry().Entries() {
			fmt.Fprintf(w, "%s\t%s\n", entry.Path, entry.Policy)
		}
		return w.Flush()
	},
}
