package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	UploadPicture(ctx context.Context) error
	DeletePicture(ctx context.Context) error
	Deactivate(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	CheckIn(ctx context.Context) error
	Assessment(ctx context.Context) error
	EditAssessment(ctx context.Context) error
	DeleteAssessment(ctx context.Context) error
	Dashboard(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Life Mentor CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — request a password reset email
//	  - reset          — reset the password with an emailed token
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the signed-in user and session expiry
//	  - profile        — show the profile
//	  - edit           — edit profile fields
//	  - passwd         — change the password
//	  - upload         — upload a profile picture
//	  - delpic         — remove the profile picture
//	  - checkin        — create or replace today's lifestyle check-in
//	  - assessment     — show the stored check-in
//	  - edit-checkin   — update selected check-in fields
//	  - delete-checkin — delete the check-in
//	  - dashboard      — show the dashboard summary
//	  - deactivate     — deactivate the account
//	  - delete-account — permanently delete the account
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers surface
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lm> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, edit, passwd, upload, delpic, checkin, assessment, edit-checkin, delete-checkin, dashboard, deactivate, delete-account, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "upload":
			_ = a.UploadPicture(ctx)

		case "delpic":
			_ = a.DeletePicture(ctx)

		case "deactivate":
			_ = a.Deactivate(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "assessment":
			_ = a.Assessment(ctx)

		case "edit-checkin":
			_ = a.EditAssessment(ctx)

		case "delete-checkin":
			_ = a.DeleteAssessment(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
