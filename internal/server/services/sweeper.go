package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/logging"
)

type codeSweeper interface {
	SweepExpiredCodes(ctx context.Context) (int, error)
}

// Sweeper periodically returns shares with expired codes to CODE_REQUESTED
// so the dashboard shows them as awaiting approval. Expiry is still
// enforced lazily at redemption; the sweep only tidies status.
type Sweeper struct {
	shares   codeSweeper
	interval time.Duration
	logger   logging.Logger
}

func NewSweeper(shares codeSweeper, interval time.Duration, l logging.Logger) *Sweeper {
	return &Sweeper{shares: shares, interval: interval, logger: l.With("module", "sweeper")}
}

// Run sweeps every interval until ctx is done. A non-positive interval
// returns at once.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	n, err := s.shares.SweepExpiredCodes(ctx)
	if err != nil {
		s.logger.Error(ctx, "sweep failed", "error", err.Error())
		return
	}
	if n > 0 {
		s.logger.Info(ctx, "expired access codes cleared", "shares", n)
	}
}
