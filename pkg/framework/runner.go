package framework

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang/glog"
)

// WithSignals derives a context which is canceled on Ctrl-C or SIGTERM.
// A second signal exits the process immediately.
func WithSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return withSignals(ctx, func() { os.Exit(1) })
}

func withSignals(ctx context.Context, forceExit func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
		case <-done:
			return
		}
		glog.Info("stop requested")
		cancel()
		select {
		case <-sigCh:
		case <-done:
			return
		}
		glog.Error("stop requested again, force exit")
		forceExit()
	}()
	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
			cancel()
		})
	}
}

// RunWithContextCancel runs a func which doesn't accept a context.
// onCancel is called only when the context is canceled, and is expected to
// unblock fn.
func RunWithContextCancel(ctx context.Context, onCancel func(), fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()
	select {
	case <-ctx.Done():
		if onCancel != nil {
			onCancel()
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// RunWithContextCloser runs fn and closes closer exactly once, either on
// cancel to unblock fn, or after fn returns. The close error is returned
// along with the error from fn.
func RunWithContextCloser(ctx context.Context, closer io.Closer, fn func() error) error {
	var (
		once     sync.Once
		closeErr error
	)
	closeFn := func() {
		once.Do(func() { closeErr = closer.Close() })
	}
	err := RunWithContextCancel(ctx, closeFn, fn)
	closeFn()
	var errs AggregatedError
	return errs.Add(err, closeErr).Aggregate()
}
