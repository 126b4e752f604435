package service

import (
	"context"
	"testing"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validListingInput() domain.CreateListingInput {
	return domain.CreateListingInput{
		OwnerID:           "owner1",
		Location:          "Lisbon",
		AvailabilityStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AvailabilityEnd:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		PricePerNight:     100,
		Notes:             "no pets",
	}
}

func TestListingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "owner1").Return(&domain.User{ID: "owner1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.Create(context.Background(), validListingInput())

	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "owner1", listing.OwnerID)
	assert.Equal(t, "Lisbon", listing.Location)
	assert.False(t, listing.IsBooked)
}

func TestListingService_Create_MissingLocation(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	input := validListingInput()
	input.Location = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Create_NegativePrice(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	input := validListingInput()
	input.PricePerNight = -1

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Create_InvertedWindow(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	input := validListingInput()
	input.AvailabilityStart = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	input.AvailabilityEnd = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Create_OwnerNotFound(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "owner1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), validListingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListingService_ListAvailable_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	listings := []*domain.Listing{
		{ID: "l1", Location: "Lisbon"},
		{ID: "l2", Location: "Porto"},
	}
	repo.EXPECT().ListAvailable(mock.Anything).Return(listings, nil)

	result, err := svc.ListAvailable(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestListingService_Close_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	repo.EXPECT().MarkBooked(mock.Anything, "l1").Return(nil)

	err := svc.Close(context.Background(), "l1")

	require.NoError(t, err)
}

func TestListingService_Close_NotFound(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewListingService(repo, userRepo)

	repo.EXPECT().MarkBooked(mock.Anything, "missing").Return(domain.ErrListingNotFound)

	err := svc.Close(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
