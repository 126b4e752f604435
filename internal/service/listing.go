package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/service/ports"
)

type ListingService struct {
	repo     ports.ListingRepo
	userRepo ports.UserRepo
}

func NewListingService(repo ports.ListingRepo, userRepo ports.UserRepo) *ListingService {
	return &ListingService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.PricePerNight < 0 {
		return nil, fmt.Errorf("%w: price_per_night must not be negative", domain.ErrValidation)
	}
	if input.AvailabilityEnd.Before(input.AvailabilityStart) {
		return nil, fmt.Errorf("%w: availability_end must not be before availability_start", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	listing := &domain.Listing{
		ID:                uuid.New().String(),
		OwnerID:           input.OwnerID,
		Location:          input.Location,
		AvailabilityStart: input.AvailabilityStart,
		AvailabilityEnd:   input.AvailabilityEnd,
		PricePerNight:     input.PricePerNight,
		Notes:             input.Notes,
		ImageURL:          input.ImageURL,
		IsBooked:          false,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) ListAvailable(ctx context.Context) ([]*domain.Listing, error) {
	return s.repo.ListAvailable(ctx)
}

// Close takes a listing off the browse page by setting its booked flag.
// Closing an already closed listing is a no-op.
func (s *ListingService) Close(ctx context.Context, id string) error {
	if err := s.repo.MarkBooked(ctx, id); err != nil {
		return fmt.Errorf("close listing: %w", err)
	}

	return nil
}
