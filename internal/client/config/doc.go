// Package config loads runtime configuration for the Life Mentor CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the LIFEMENTOR_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-s string   directory holding the persisted session
//	-v          verbose (debug) logging
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "15s",
//	  "session_dir": "/home/user/.lifementor",
//	  "verbose": false
//	}
package config
