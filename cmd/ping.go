package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		g, err := rt.newController(nil).Greet(cmd.Context())
		if err != nil {
			return fmt.Errorf("backend not reachable at %s: %w", rt.cfg.BaseURL, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (status: %s)\n", g.Message, g.Status)
		return nil
	},
}
