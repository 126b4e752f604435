package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService decides whether a candidate range may be booked and owns
// the pending→confirmed transition of a hold.
type ReservationService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	holdTTL     time.Duration
	logger      logger.Logger
}

func NewReservationService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	holdTTL time.Duration,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		holdTTL:     holdTTL,
		logger:      logger,
	}
}

// Validate checks a candidate range against a listing. It accepts iff the
// range is ordered, lies inside the availability window and the listing is
// still open, and then prices the stay.
func (s *ReservationService) Validate(listing *domain.Listing, r domain.StayRange) (*domain.Quote, error) {
	if !r.CheckIn.Before(r.CheckOut) {
		return nil, domain.ErrInvalidRange
	}
	if r.CheckIn.Before(listing.AvailabilityStart) || r.CheckOut.After(listing.AvailabilityEnd) {
		return nil, domain.ErrOutOfWindow
	}
	if listing.IsBooked {
		return nil, domain.ErrListingBooked
	}

	nights := r.Nights()
	return &domain.Quote{
		Nights:     nights,
		TotalPrice: float64(nights) * listing.PricePerNight,
	}, nil
}

func (s *ReservationService) Quote(ctx context.Context, listingID string, r domain.StayRange) (*domain.Quote, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return s.Validate(listing, r)
}

// Hold re-validates the range and records a pending booking. A hold does not
// lock the listing; the race for the flag is settled at Commit.
func (s *ReservationService) Hold(ctx context.Context, listingID, requesterID string, r domain.StayRange) (*domain.Booking, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	if _, err = s.Validate(listing, r); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		ListingID:   listingID,
		RequesterID: requesterID,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create hold: %w", err)
	}

	s.logger.Info("hold created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listingID),
		logger.String("requester_id", requesterID),
	)

	return booking, nil
}

// Commit finalizes a hold: the repository promotes it to confirmed and flips
// the listing flag atomically. A commit that loses the race comes back as
// ErrConcurrentConflict with the hold already cancelled.
func (s *ReservationService) Commit(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Confirm(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", booking.ListingID),
		logger.String("requester_id", booking.RequesterID),
	)

	go s.notifyConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *ReservationService) Cancel(ctx context.Context, bookingID string) error {
	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("hold cancelled",
		logger.String("booking_id", bookingID),
	)

	return nil
}

func (s *ReservationService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, s.holdTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel stale holds: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale holds cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *ReservationService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByRequester(ctx, requesterID)
}

func (s *ReservationService) notifyConfirmed(ctx context.Context, booking *domain.Booking) {
	user, err := s.userRepo.GetByID(ctx, booking.RequesterID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.RequesterID),
			logger.String("error", err.Error()),
		)
		return
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		s.logger.Error("failed to get listing for notification",
			logger.String("listing_id", booking.ListingID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingConfirmed(ctx, user, listing, booking)
}

func (s *ReservationService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.RequesterID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", b.RequesterID),
			)
			continue
		}

		listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
		if err != nil {
			s.logger.Error("failed to get listing for cancel notification",
				logger.String("listing_id", b.ListingID),
			)
			continue
		}

		s.notifier.NotifyBookingCancelled(ctx, user, listing, b)
	}
}
