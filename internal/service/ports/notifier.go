package ports

import (
	"context"

	"github.com/sahilahmed21/HomeShare/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)
}
