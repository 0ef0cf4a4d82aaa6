package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/codevoice/internal/app"
	"github.com/abhisek/codevoice/internal/config"
	"github.com/abhisek/codevoice/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codevoice",
	Short: "Coding practice with a spoken AI mentor",
	Long:  "CodeVoice is a terminal client for a coding-practice backend. Browse problems, run code and ask an AI mentor for spoken hints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.VariantWorkspace)
	},
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override configuration.
func addConfigFlags(f *pflag.FlagSet) {
	f.String("base-url", "", "Backend base URL (overrides CODEVOICE_BASE_URL, default "+config.DefaultBaseURL+")")
	f.String("language", "", "Language sent with run requests (overrides CODEVOICE_LANGUAGE)")
	f.String("catalog-errors", "", "Catalog failure visibility: silent or message (overrides CODEVOICE_CATALOG_ERRORS)")
	f.Duration("timeout", 0, "Per-request timeout, 0 for none (overrides CODEVOICE_TIMEOUT)")
	f.String("player", "", "Audio player command for hints (overrides CODEVOICE_PLAYER)")
	f.String("save-audio", "", "Directory to keep a copy of every hint (overrides CODEVOICE_AUDIO_DIR)")
	f.Bool("journal", false, "Record requests, runs and hints in the local journal (overrides CODEVOICE_JOURNAL)")
	f.String("db", "", "Path to the journal database (overrides CODEVOICE_DB)")
	f.String("log", "", "Write a debug log to this file (overrides CODEVOICE_LOG)")
}

// loadConfig resolves configuration from defaults, the environment and
// command-line flags, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("base-url") {
		cfg.BaseURL, _ = f.GetString("base-url")
	}
	if f.Changed("language") {
		cfg.Language, _ = f.GetString("language")
	}
	if f.Changed("catalog-errors") {
		p, _ := f.GetString("catalog-errors")
		cfg.CatalogErrors = config.CatalogErrorPolicy(p)
	}
	if f.Changed("timeout") {
		cfg.Timeout, _ = f.GetDuration("timeout")
	}
	if f.Changed("player") {
		cfg.Audio.Player, _ = f.GetString("player")
	}
	if f.Changed("save-audio") {
		cfg.Audio.SaveDir, _ = f.GetString("save-audio")
	}
	if f.Changed("journal") {
		cfg.Journal.Enabled, _ = f.GetBool("journal")
	}
	if f.Changed("db") {
		cfg.Journal.Path, _ = f.GetString("db")
	}
	if f.Changed("log") {
		cfg.LogPath, _ = f.GetString("log")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the journal path using the configured path
// (flag or CODEVOICE_DB), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.Journal.Path != "" {
		return cfg.Journal.Path, store.EnsureDir(cfg.Journal.Path)
	}
	return store.DefaultDBPath()
}
