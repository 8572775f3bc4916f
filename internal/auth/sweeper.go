package auth

import (
	"context"
	"time"

	"crmdesk-backend/internal/logging"
)

// ExpiredSessionDeleter removes sessions past their expiry
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically purges expired sessions. Expired sessions are
// already rejected on lookup; this only keeps the table small.
type Sweeper struct {
	sessions ExpiredSessionDeleter
	interval time.Duration
	log      logging.Logger
}

// NewSweeper creates a sweeper running every interval
func NewSweeper(sessions ExpiredSessionDeleter, interval time.Duration, log logging.Logger) *Sweeper {
	return &Sweeper{sessions: sessions, interval: interval, log: log}
}

// SweepOnce deletes expired sessions and returns how many were removed
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error(ctx, "session sweep failed", "error", err)
		return 0, err
	}
	if n > 0 {
		s.log.Debug(ctx, "expired sessions removed", "count", n)
	}
	return n, nil
}

// Run sweeps until ctx is done. A non-positive interval disables sweeping.
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
			_, _ = s.SweepOnce(ctx)
		}
	}
}
