package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-endpoint request statistics from the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().RequestStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No requests recorded.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ENDPOINT\tREQUESTS\tFAILED\tAVG LATENCY")
		for _, s := range stats {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.0fms\n", s.Endpoint, s.Total, s.Failed, s.AvgLatencyMs)
		}
		return tw.Flush()
	},
}
