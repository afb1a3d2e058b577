package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if u := a.provider.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return "(signed out)"
}

// Root prints the welcome banner and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Life Mentor CLI (type 'help' for commands)")
	if u := a.provider.CurrentUser(); u != nil {
		printlnFn(fmt.Sprintf("Signed in as %s", u.Email))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
