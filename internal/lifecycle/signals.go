package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"udplog/internal/global"
	"udplog/internal/logctx"
)

// Anything with a graceful stop (collector, client wrapper, console cancel)
type Stopper interface {
	Stop()
}

// Adapts a plain function (e.g. a context cancel) to Stopper
type StopFunc func()

func (fn StopFunc) Stop() {
	fn()
}

// Blocks until SIGINT, SIGTERM or SIGQUIT arrives, then stops every target in
// order. Returns without stopping anything if ctx ends first.
func SignalHandler(ctx context.Context, targets ...Stopper) {
	// Channel for handling interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)

	waitAndStop(ctx, sigChan, targets)
}

func waitAndStop(ctx context.Context, sigChan <-chan os.Signal, targets []Stopper) (sig os.Signal) {
	select {
	case <-ctx.Done():
		return
	case sig = <-sigChan:
	}

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v\n", sig)

	err := NotifyStopping(ctx)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify stopping failed: %v\n", err)
	}

	for _, target := range targets {
		target.Stop()
	}
	return
}
