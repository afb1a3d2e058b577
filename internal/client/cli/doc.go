// Package cli provides the interactive Life Mentor command-line client.
//
// It wires configuration, the persisted session, the REST API client and the
// domain services into an interactive REPL. Typical flow: the app restores
// the previous session from disk, shows the signed-in user in the prompt,
// and executes user commands until exit.
//
// Key features:
//   - Register / Login / Logout and password recovery
//   - Profile view and editing, avatar upload, account deactivation
//   - Daily lifestyle check-in (create, show, edit, delete)
//   - Dashboard summary
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
