package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type State string

const (
	StateSelectingDates   State = "selecting_dates"
	StateReviewingPayment State = "reviewing_payment"
	StateCommitted        State = "committed"
	StateAbandoned        State = "abandoned"
)

// ReservationOps is the slice of the reservation engine a workflow drives.
type ReservationOps interface {
	Quote(ctx context.Context, listingID string, r domain.StayRange) (*domain.Quote, error)
	Hold(ctx context.Context, listingID, requesterID string, r domain.StayRange) (*domain.Booking, error)
	Commit(ctx context.Context, bookingID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
}

// Workflow is the multi-step reservation process of a single requester:
// select dates → review payment → committed or abandoned. An instance lives
// in memory only and is owned by the requester who started it.
type Workflow struct {
	id          string
	listingID   string
	requesterID string

	mu        sync.Mutex
	state     State
	candidate *domain.StayRange
	quote     *domain.Quote
	hold      *domain.Booking
	booking   *domain.Booking
	charging  bool

	ops     ReservationOps
	gateway ports.PaymentGateway
	log     logger.Logger
}

// Snapshot is an immutable view of a workflow instance.
type Snapshot struct {
	ID          string
	ListingID   string
	RequesterID string
	State       State
	Candidate   *domain.StayRange
	Quote       *domain.Quote
	Booking     *domain.Booking
}

func newWorkflow(id, listingID, requesterID string, ops ReservationOps, gateway ports.PaymentGateway, log logger.Logger) *Workflow {
	return &Workflow{
		id:          id,
		listingID:   listingID,
		requesterID: requesterID,
		state:       StateSelectingDates,
		ops:         ops,
		gateway:     gateway,
		log:         log,
	}
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workflow) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:          w.id,
		ListingID:   w.listingID,
		RequesterID: w.requesterID,
		State:       w.state,
	}
	if w.candidate != nil {
		c := *w.candidate
		snap.Candidate = &c
	}
	if w.quote != nil {
		q := *w.quote
		snap.Quote = &q
	}
	if w.booking != nil {
		b := *w.booking
		snap.Booking = &b
	}
	return snap
}

// SelectRange stores the candidate range. Allowed only while selecting dates.
func (w *Workflow) SelectRange(r domain.StayRange) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateSelectingDates || w.charging {
		return domain.ErrInvalidTransition
	}

	w.candidate = &r
	return nil
}

// ProceedToReview validates the candidate against the listing. On acceptance
// a pending hold is recorded and the workflow moves to payment review; a
// rejection leaves the workflow selecting dates with the reason surfaced.
func (w *Workflow) ProceedToReview(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateSelectingDates || w.charging {
		return domain.ErrInvalidTransition
	}
	if w.candidate == nil {
		return fmt.Errorf("%w: no dates selected", domain.ErrValidation)
	}

	quote, err := w.ops.Quote(ctx, w.listingID, *w.candidate)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			w.state = StateAbandoned
		}
		return err
	}

	hold, err := w.ops.Hold(ctx, w.listingID, w.requesterID, *w.candidate)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			w.state = StateAbandoned
		}
		return err
	}

	w.quote = quote
	w.hold = hold
	w.state = StateReviewingPayment
	return nil
}

// Back returns to date selection with the entered dates preserved. The hold
// is released.
func (w *Workflow) Back(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateReviewingPayment || w.charging {
		return domain.ErrInvalidTransition
	}

	w.releaseHoldLocked(ctx)
	w.quote = nil
	w.state = StateSelectingDates
	return nil
}

// Confirm charges the gateway and commits the hold. The charge is the
// suspension point: the instance lock is released while it runs and the state
// is re-checked afterwards, so an abandon during the delay wins and no commit
// happens. A declined charge or a lost commit race returns the workflow to
// date selection with the candidate preserved.
func (w *Workflow) Confirm(ctx context.Context) error {
	w.mu.Lock()
	if w.state != StateReviewingPayment || w.charging {
		w.mu.Unlock()
		return domain.ErrInvalidTransition
	}
	w.charging = true
	hold := w.hold
	amount := w.quote.TotalPrice
	w.mu.Unlock()

	chargeErr := w.gateway.Charge(ctx, w.requesterID, amount)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.charging = false

	if w.state == StateAbandoned {
		// Abandoned while the charge was in flight; the hold is already
		// released and the commit must not run.
		return domain.ErrInvalidTransition
	}

	if chargeErr != nil {
		if errors.Is(chargeErr, context.Canceled) || errors.Is(chargeErr, context.DeadlineExceeded) {
			// The charge never resolved; stay in review so the requester can
			// retry.
			return chargeErr
		}

		w.releaseHoldLocked(context.WithoutCancel(ctx))
		w.quote = nil
		w.state = StateSelectingDates
		return fmt.Errorf("%w: %s", domain.ErrConfirmationFailed, chargeErr)
	}

	booking, err := w.ops.Commit(ctx, hold.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConcurrentConflict):
			// The losing hold was cancelled by the commit itself.
			w.hold = nil
			w.quote = nil
			w.state = StateSelectingDates
		case errors.Is(err, domain.ErrListingNotFound):
			w.releaseHoldLocked(context.WithoutCancel(ctx))
			w.state = StateAbandoned
		default:
			w.releaseHoldLocked(context.WithoutCancel(ctx))
			w.quote = nil
			w.state = StateSelectingDates
		}
		return err
	}

	w.booking = booking
	w.hold = nil
	w.state = StateCommitted
	return nil
}

// Abandon terminates the workflow from any non-terminal state and releases a
// live hold. Abandoning during the payment delay prevents the commit.
func (w *Workflow) Abandon(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case StateCommitted, StateAbandoned:
		return domain.ErrInvalidTransition
	}

	w.releaseHoldLocked(context.WithoutCancel(ctx))
	w.state = StateAbandoned
	return nil
}

func (w *Workflow) releaseHoldLocked(ctx context.Context) {
	if w.hold == nil {
		return
	}

	if err := w.ops.Cancel(ctx, w.hold.ID); err != nil {
		// The stale-hold sweeper will reap it.
		w.log.Error("failed to release hold",
			logger.String("booking_id", w.hold.ID),
			logger.String("error", err.Error()),
		)
	}
	w.hold = nil
}
