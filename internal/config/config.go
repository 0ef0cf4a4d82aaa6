package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// CatalogErrorPolicy controls how a failed catalog fetch is shown.
type CatalogErrorPolicy string

const (
	// CatalogErrorsSilent leaves the problem list empty with no message.
	CatalogErrorsSilent CatalogErrorPolicy = "silent"

	// CatalogErrorsMessage writes a "backend not reachable" line to the console.
	CatalogErrorsMessage CatalogErrorPolicy = "message"
)

// DefaultBaseURL is where the backend listens in a local setup.
const DefaultBaseURL = "http://localhost:8000"

// Config holds all client configuration.
type Config struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string

	// Language is sent with every /execute request. Default: "python".
	Language string

	// CatalogErrors selects the catalog failure visibility.
	CatalogErrors CatalogErrorPolicy

	// Timeout bounds each backend request. Zero means no timeout, which
	// matches the browser client: a hung request keeps its busy flag set.
	Timeout time.Duration

	Audio   AudioConfig
	Journal JournalConfig

	// LogPath is the debug log file. Empty disables logging.
	LogPath string
}

// AudioConfig configures hint playback.
type AudioConfig struct {
	// Player is the command used to play hint audio. Empty means
	// auto-detect from a list of common players.
	Player string

	// SaveDir, when set, keeps a copy of every hint audio payload.
	SaveDir string
}

// JournalConfig configures the optional activity journal.
type JournalConfig struct {
	Enabled bool

	// Path overrides the default database location.
	Path string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Language:      "python",
		CatalogErrors: CatalogErrorsSilent,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed values are reported by Validate.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if u := os.Getenv("CODEVOICE_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if l := os.Getenv("CODEVOICE_LANGUAGE"); l != "" {
		cfg.Language = l
	}
	if p := os.Getenv("CODEVOICE_CATALOG_ERRORS"); p != "" {
		cfg.CatalogErrors = CatalogErrorPolicy(p)
	}
	if t := os.Getenv("CODEVOICE_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return cfg, fmt.Errorf("CODEVOICE_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if p := os.Getenv("CODEVOICE_PLAYER"); p != "" {
		cfg.Audio.Player = p
	}
	if d := os.Getenv("CODEVOICE_AUDIO_DIR"); d != "" {
		cfg.Audio.SaveDir = d
	}
	if j := os.Getenv("CODEVOICE_JOURNAL"); j != "" {
		cfg.Journal.Enabled = parseBool(j)
	}
	if p := os.Getenv("CODEVOICE_DB"); p != "" {
		cfg.Journal.Path = p
	}
	if l := os.Getenv("CODEVOICE_LOG"); l != "" {
		cfg.LogPath = l
	}

	return cfg, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Validate checks the configuration and normalizes the base URL.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	switch c.CatalogErrors {
	case CatalogErrorsSilent, CatalogErrorsMessage:
	case "":
		c.CatalogErrors = CatalogErrorsSilent
	default:
		return fmt.Errorf("invalid catalog error policy %q (want %q or %q)",
			c.CatalogErrors, CatalogErrorsSilent, CatalogErrorsMessage)
	}

	if c.Language == "" {
		c.Language = "python"
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
