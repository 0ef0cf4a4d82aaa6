package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List the problem catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		problems, err := rt.client.ListProblems(cmd.Context())
		if err != nil {
			return fmt.Errorf("list problems: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintln(out, "No problems available.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY")
		for _, p := range problems {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Title, p.Difficulty)
		}
		return tw.Flush()
	},
}
