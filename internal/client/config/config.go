package config

import (
	"time"

	"github.com/lifementor/lifementor-cli/internal/filex"
)

// Config holds runtime settings for the Life Mentor CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including any path prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDir: directory holding the persisted token and user entries.
//   - Verbose: enables debug logging.
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	SessionDir     string        `env:"SESSION_DIR"`
	Verbose        bool          `env:"VERBOSE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.SessionDir = filex.DefaultStateDir()
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
