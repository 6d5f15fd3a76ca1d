package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is canceled on SIGINT or SIGTERM.
// Call stop to release the signal registration.
func SetupSignalHandler() (ctx context.Context, stop context.CancelFunc) {
	return SetupSignalHandlerWithParent(context.Background())
}

// SetupSignalHandlerWithParent is SetupSignalHandler derived from parent.
func SetupSignalHandlerWithParent(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
