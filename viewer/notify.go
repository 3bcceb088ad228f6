package viewer

import (
	"context"
	"os"
	"os/signal"
)

// Notify returns a copy of ctx that is cancelled on a termination signal,
// and a channel receiving terminal resize signals. The channel has a single
// slot: resizes arriving while one is pending are dropped, which is what a
// redraw needs. Call stop to restore default signal handling.
func Notify(ctx context.Context) (context.Context, <-chan os.Signal, func()) {
	ctx, cancel := signal.NotifyContext(ctx, terminateSignals...)

	redraw := make(chan os.Signal, 1)
	if len(resizeSignals) > 0 {
		signal.Notify(redraw, resizeSignals...)
	}

	stop := func() {
		signal.Stop(redraw)
		cancel()
	}

	return ctx, redraw, stop
}
