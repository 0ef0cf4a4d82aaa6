package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ws "github.com/abhisek/codevoice/internal/workspace"
)

var runCmd = &cobra.Command{
	Use:   "run [FILE]",
	Short: "Run code on the backend and print the console output",
	Long: `Run code on the execution backend and print what the console would show.

With --problem the problem's starter code is used unless FILE is given.
FILE "-" reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problemID, _ := cmd.Flags().GetInt("problem")
		hasProblem := cmd.Flags().Changed("problem")
		if !hasProblem && len(args) == 0 {
			return errors.New("nothing to run: pass FILE or --problem")
		}

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctrl := rt.newController(nil)
		if err := prepareSession(cmd, ctrl, problemID, hasProblem, args); err != nil {
			return err
		}

		ctrl.RunCode(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), ctrl.State().Output())
		if err := ctrl.LastErr(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Int("problem", 0, "Problem ID whose starter code (and context) to use")
}

// prepareSession loads the catalog when a problem is requested, selects it,
// and replaces the code with FILE when given.
func prepareSession(cmd *cobra.Command, ctrl *ws.Controller, problemID int, hasProblem bool, args []string) error {
	ctx := cmd.Context()
	if hasProblem {
		if err := ctrl.LoadCatalog(ctx); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if err := ctrl.State().SelectProblemByID(problemID); err != nil {
			return fmt.Errorf("problem %d: %w", problemID, err)
		}
	}

	if len(args) == 1 {
		code, err := readSource(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		ctrl.State().SetCode(code)
	}
	return nil
}

func readSource(stdin io.Reader, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), nil
}
