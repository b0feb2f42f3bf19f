package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component that drains in-flight work when stopped
type Stopper interface {
	Stop() context.Context
}

// GracefulShutdown stops the scheduler and waits for a running job to finish,
// bounded by ctx.
func GracefulShutdown(ctx context.Context, s Stopper) {
	slog.Info(LogMsgShuttingDown)

	select {
	case <-s.Stop().Done():
		slog.Info(LogMsgShutdownComplete)
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimedOut, "error", ctx.Err())
	}
}
