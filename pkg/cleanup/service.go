// Package cleanup enforces the coordination table's retention rule:
// active rows older than the conflict window no longer gate anyone and
// are transitioned to superseded on a periodic sweep.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// Superseder is the Coordinator surface the sweep needs, implemented
// by coordinator.Service.
type Superseder interface {
	SupersedeStale(ctx context.Context) (int, error)
}

// Service periodically supersedes stale coordination decisions. The
// sweep is idempotent and safe to run from multiple replicas.
type Service struct {
	interval    time.Duration
	coordinator Superseder

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service sweeping every interval.
func NewService(interval time.Duration, coordinator Superseder) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{interval: interval, coordinator: coordinator}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	count, err := s.coordinator.SupersedeStale(ctx)
	if err != nil {
		slog.Error("Retention: supersede sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: superseded stale coordination decisions", "count", count)
	}
}
