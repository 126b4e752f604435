package ports

import (
	"context"

	"github.com/sahilahmed21/HomeShare/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	ListAvailable(ctx context.Context) ([]*domain.Listing, error)
	MarkBooked(ctx context.Context, id string) error
}
