package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Simulator stands in for a real payment gateway: it waits a configured delay
// and approves the charge. The delay has no side effects, so a cancelled
// context aborts the charge cleanly.
type Simulator struct {
	delay  time.Duration
	logger logger.Logger
}

func NewSimulator(delay time.Duration, logger logger.Logger) *Simulator {
	return &Simulator{
		delay:  delay,
		logger: logger,
	}
}

func (s *Simulator) Charge(ctx context.Context, requesterID string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: non-positive amount", domain.ErrConfirmationFailed)
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	s.logger.Info("charge approved",
		logger.String("requester_id", requesterID),
		logger.Any("amount", amount),
	)

	return nil
}
