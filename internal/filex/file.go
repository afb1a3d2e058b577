// Package filex contains small filesystem helpers for client-side state
// directories.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any missing parents) with owner-only access and
// returns the path. Session files hold auth tokens, hence the tight mode.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// DefaultStateDir returns the per-user directory for persisted client state,
// $HOME/.lifementor. It falls back to the working directory when the home
// directory cannot be resolved.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lifementor"
	}
	return filepath.Join(home, ".lifementor")
}
