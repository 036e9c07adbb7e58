/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyInterrupt returns a context cancelled by the first SIGINT or SIGTERM.
// The handler is released as soon as that happens, so a second signal
// gets the default behavior and terminates the wrapper.
func notifyInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}
