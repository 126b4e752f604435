package scheduler

import (
	"context"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staleHoldCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically reaps pending holds whose workflow instance is gone,
// e.g. after a process restart.
type Scheduler struct {
	reservations staleHoldCanceller
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations staleHoldCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservations.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale hold cancelled",
			logger.String("booking_id", b.ID),
			logger.String("requester_id", b.RequesterID),
			logger.String("listing_id", b.ListingID),
		)
	}
}
