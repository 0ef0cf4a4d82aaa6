package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/codevoice/internal/app"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Start the minimal front-end showing the backend greeting",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.VariantGreeting)
	},
}
