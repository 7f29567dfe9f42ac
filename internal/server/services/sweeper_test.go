package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (c *countingSweeper) SweepExpiredCodes(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestSweeper_RunsUntilCancelled(t *testing.T) {
	cs := &countingSweeper{}
	s := NewSweeper(cs, 5*time.Millisecond, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return cs.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_DisabledInterval(t *testing.T) {
	cs := &countingSweeper{}
	s := NewSweeper(cs, 0, logging.Discard())

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper should return at once")
	}
	assert.Zero(t, cs.calls.Load())
}

func TestSweeper_ErrorsDoNotStopTheLoop(t *testing.T) {
	cs := &countingSweeper{err: errBoom}
	s := NewSweeper(cs, 5*time.Millisecond, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	assert.Eventually(t, func() bool { return cs.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestSweeper_WithShareManager(t *testing.T) {
	h := newHarness(t)
	s, _ := h.approved(t)
	h.clock.advance(codeTTL + time.Minute)

	NewSweeper(h.shares, time.Hour, logging.Discard()).sweepOnce(context.Background())

	got, err := h.shares.GetShare(context.Background(), s.ID)
	assert.NoError(t, err)
	assert.Empty(t, got.AccessCode)
}
