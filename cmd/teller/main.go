package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harborbank/teller/internal/cmd"
	"github.com/harborbank/teller/internal/exitcode"
)

// main hands a signal-aware context to the command tree and translates
// the resulting error into an exit code, so scripts can tell auth,
// network, and config failures apart.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		exitcode.Exit(exitcode.Success)
	}

	if ctx.Err() == context.Canceled {
		fmt.Fprintln(os.Stderr, "\nCancelled.")
		exitcode.Exit(exitcode.Interrupted)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitcode.ExitWithError(err)
}
