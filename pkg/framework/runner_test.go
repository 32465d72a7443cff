package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingCloser struct {
	unblock chan struct{}
	closed  int
	err     error
}

func newBlockingCloser() *blockingCloser {
	return &blockingCloser{unblock: make(chan struct{})}
}

func (c *blockingCloser) Close() error {
	c.closed++
	if c.closed == 1 {
		close(c.unblock)
	}
	return c.err
}

func (c *blockingCloser) wait() error {
	<-c.unblock
	return errors.New("closed")
}

func TestRunWithContextCloserCancel(t *testing.T) {
	c := newBlockingCloser()
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	go func() {
		<-started
		cancel()
	}()
	err := RunWithContextCloser(ctx, c, func() error {
		close(started)
		return c.wait()
	})
	require.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, c.closed)
}

func TestRunWithContextCloserReturns(t *testing.T) {
	c := newBlockingCloser()
	fnErr := errors.New("failed")
	err := RunWithContextCloser(context.Background(), c, func() error {
		return fnErr
	})
	require.Equal(t, fnErr, err)
	assert.Equal(t, 1, c.closed)
}

func TestRunWithContextCloserCloseError(t *testing.T) {
	c := newBlockingCloser()
	c.err = errors.New("close failed")
	fnErr := errors.New("failed")
	err := RunWithContextCloser(context.Background(), c, func() error {
		return fnErr
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fnErr))
	assert.Contains(t, err.Error(), "close failed")

	err = RunWithContextCloser(context.Background(), newBlockingCloser(), func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestWithSignalsStop(t *testing.T) {
	ctx, stop := withSignals(context.Background(), func() {
		t.Error("unexpected force exit")
	})
	require.NoError(t, ctx.Err())
	stop()
	stop()
	<-ctx.Done()
	assert.Equal(t, context.Canceled, ctx.Err())
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	assert.NoError(t, errs.Add(nil, nil).Aggregate())

	e1 := errors.New("e1")
	assert.Equal(t, e1, errs.Add(e1).Aggregate())

	e2 := errors.New("e2")
	err := errs.Add(nil, e2).Aggregate()
	require.Error(t, err)
	assert.Equal(t, "e1; e2", err.Error())
	assert.True(t, errors.Is(err, e1))
}
