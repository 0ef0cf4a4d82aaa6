package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/codevoice/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs and hints from the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")
		activity, err := st.EventRepo().RecentActivity(cmd.Context(), store.QueryOpts{Limit: limit, SessionID: session})
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(activity) == 0 {
			fmt.Fprintln(out, "Journal is empty.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tKIND\tPROBLEM\tOK\tDETAIL")
		for _, a := range activity {
			ok := "yes"
			if !a.Success {
				ok = "no"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"), a.Kind, a.ProblemID, ok, summarize(a.Detail, 60))
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries")
	historyCmd.Flags().String("session", "", "Only show entries from this session ID")
}

// openJournal opens the journal database for reading regardless of
// whether recording is enabled.
func openJournal(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// summarize flattens s to one line of at most n runes.
func summarize(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
