package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint --problem N [FILE]",
	Short: "Ask the AI mentor for a spoken hint",
	Long: `Ask the AI mentor for a spoken hint on a problem and play it.

The hint is based on FILE when given, otherwise on the starter code.
The command waits for playback to finish.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problemID, _ := cmd.Flags().GetInt("problem")
		if !cmd.Flags().Changed("problem") {
			return errors.New("--problem is required")
		}

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		player, wait := rt.newPlayer(cmd.ErrOrStderr())
		ctrl := rt.newController(player)
		if err := prepareSession(cmd, ctrl, problemID, true, args); err != nil {
			return err
		}

		ctrl.AskAIHint(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(ctrl.State().Output()))
		if err := ctrl.LastErr(); err != nil {
			return fmt.Errorf("hint: %w", err)
		}
		wait()
		return nil
	},
}

func init() {
	hintCmd.Flags().Int("problem", 0, "Problem ID to ask about")
}
