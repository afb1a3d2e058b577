package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with LIFEMENTOR_-prefixed environment variables:
// LIFEMENTOR_API_BASE_URL, LIFEMENTOR_REQUEST_TIMEOUT, LIFEMENTOR_SESSION_DIR
// and LIFEMENTOR_VERBOSE. Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "LIFEMENTOR_"}); err != nil {
		panic(err)
	}
}
