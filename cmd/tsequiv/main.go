// Command tsequiv checks that TypeScript files are structurally the same
// programs as the JavaScript files they were converted from.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	exitEqual     = 0
	exitDifferent = 1
	exitError     = 2
)

// exitCodeError carries a non-zero exit code out of a command without printing
// anything further.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	var exit *exitCodeError
	switch {
	case err == nil:
		os.Exit(exitEqual)
	case errors.As(err, &exit):
		os.Exit(exit.code)
	default:
		fmt.Fprintln(os.Stderr, "tsequiv:", err)
		os.Exit(exitError)
	}
}
