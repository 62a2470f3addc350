// Package shutdown ties process signals to context cancellation and runs
// registered hooks once, before the context is canceled.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut     sync.Mutex //nolint:gochecknoglobals
	hooks   []func()   //nolint:gochecknoglobals
	trigger func()     //nolint:gochecknoglobals
)

// BeforeShutdown registers a function to be called before the context
// returned by SetupHandler is canceled.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown triggers the shutdown process programmatically. It is a no-op
// when SetupHandler has not been called.
func Shutdown() {
	mut.Lock()
	fire := trigger
	mut.Unlock()

	if fire != nil {
		fire()
	}
}

// SetupHandler returns a context derived from parent that is canceled on
// SIGINT, SIGTERM or a call to Shutdown, after the registered hooks ran.
func SetupHandler(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var once sync.Once

	stop := func(reason string) {
		once.Do(func() {
			slog.Warn("Received " + reason + ", shutting down...")
			signal.Stop(signals)
			cleanup()
			cancel()
		})
	}

	mut.Lock()
	trigger = func() { stop("shutdown request") }
	mut.Unlock()

	go func() {
		select {
		case sig := <-signals:
			stop(sig.String())
		case <-ctx.Done():
			signal.Stop(signals)
		}
	}()

	return ctx
}

func cleanup() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
