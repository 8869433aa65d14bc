package util

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext returns a context that is canceled on the first ctrl+c
// or SIGTERM. A second signal exits the process straight away.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-c:
			slog.Warn("interrupted, stopping after the current measurement", "signal", sig)
			cancel()
		case <-ctx.Done():
			signal.Stop(c)
			return
		}
		<-c
		os.Exit(1)
	}()
	return ctx, cancel
}
