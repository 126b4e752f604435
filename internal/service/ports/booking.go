package ports

import (
	"context"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	CancelStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Booking, error)
}
