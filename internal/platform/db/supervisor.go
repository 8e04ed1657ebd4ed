package db

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"travel_journal/internal/shared/apperr"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Supervisor tracks store reachability. Check performs a time-bounded ping;
// Run repeats it in the background so a lost database is picked up again
// without restarting the process.
type Supervisor struct {
	db       Pinger
	timeout  time.Duration
	interval time.Duration
	healthy  atomic.Bool
}

// NewSupervisor returns a Supervisor for db. It starts out healthy.
func NewSupervisor(db Pinger, timeout, interval time.Duration) *Supervisor {
	if timeout <= 0 {
		timeout = defaultAcquireTimeout
	}
	if interval <= 0 {
		interval = defaultReconnectEvery
	}
	s := &Supervisor{db: db, timeout: timeout, interval: interval}
	s.healthy.Store(true)
	return s
}

// Healthy reports the result of the latest check.
func (s *Supervisor) Healthy() bool {
	return s.healthy.Load()
}

// Check pings the store. A failure is returned as an Infrastructure error.
func (s *Supervisor) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.PingContext(ctx)
	was := s.healthy.Swap(err == nil)
	switch {
	case err != nil && was:
		slog.Error("database connection lost", "error", err)
	case err == nil && !was:
		slog.Info("database connection restored")
	}
	if err != nil {
		return apperr.Infrastructure("Database connection unavailable", err)
	}
	return nil
}

// Run checks the store every interval until ctx is done.
func (s *Supervisor) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Check(ctx)
		}
	}
}
