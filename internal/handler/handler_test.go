package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/handler/dto"
	hmocks "github.com/sahilahmed21/HomeShare/internal/handler/mocks"
	"github.com/sahilahmed21/HomeShare/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockListingSvc, *hmocks.MockReservationFlowSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	listingSvc := hmocks.NewMockListingSvc(t)
	flowSvc := hmocks.NewMockReservationFlowSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(listingSvc, flowSvc, bookingSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.POST("/listings/:id/close", h.CloseListing)
		api.POST("/reservations", h.StartReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/dates", h.SelectDates)
		api.POST("/reservations/:id/review", h.ReviewReservation)
		api.POST("/reservations/:id/back", h.BackReservation)
		api.POST("/reservations/:id/confirm", h.ConfirmReservation)
		api.POST("/reservations/:id/abandon", h.AbandonReservation)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return listingSvc, flowSvc, bookingSvc, userSvc, r
}

func sampleListing() *domain.Listing {
	return &domain.Listing{
		ID:                uuid.New().String(),
		OwnerID:           uuid.New().String(),
		Location:          "Lisbon",
		AvailabilityStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AvailabilityEnd:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		PricePerNight:     100,
		CreatedAt:         time.Now(),
	}
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	listingSvc, _, _, _, r := setupRouter(t)

	listing := sampleListing()
	listingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(listing, nil)

	body, _ := json.Marshal(dto.CreateListingRequest{
		OwnerID:           listing.OwnerID,
		Location:          "Lisbon",
		AvailabilityStart: "2024-06-01",
		AvailabilityEnd:   "2024-06-30",
		PricePerNight:     100,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lisbon", resp.Location)
	assert.False(t, resp.IsBooked)
}

func TestHandler_CreateListing_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"location":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateListing_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"owner_id":"` + uuid.New().String() + `","location":"Lisbon","availability_start":"not-a-date","availability_end":"2024-06-30","price_per_night":100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListListings_Success(t *testing.T) {
	listingSvc, _, _, _, r := setupRouter(t)

	listings := []*domain.Listing{sampleListing(), sampleListing()}
	listingSvc.EXPECT().ListAvailable(mock.Anything).Return(listings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetListing_Success(t *testing.T) {
	listingSvc, _, _, _, r := setupRouter(t)

	listing := sampleListing()
	listingSvc.EXPECT().GetByID(mock.Anything, listing.ID).Return(listing, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/"+listing.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-01", resp.AvailabilityStart)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	listingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	listingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CloseListing_Success(t *testing.T) {
	listingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	listingSvc.EXPECT().Close(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/"+id+"/close", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Reservations ---

func TestHandler_StartReservation_Success(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	userID := uuid.New().String()
	snap := workflow.Snapshot{
		ID:          uuid.New().String(),
		ListingID:   listingID,
		RequesterID: userID,
		State:       workflow.StateSelectingDates,
	}

	flowSvc.EXPECT().Start(mock.Anything, listingID, userID).Return(snap, nil)

	body, _ := json.Marshal(dto.StartReservationRequest{ListingID: listingID, UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "selecting_dates", resp.State)
}

func TestHandler_StartReservation_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"listing_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SelectDates_Success(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	stay := domain.StayRange{
		CheckIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
	}
	snap := workflow.Snapshot{
		ID:        flowID,
		State:     workflow.StateSelectingDates,
		Candidate: &stay,
	}

	flowSvc.EXPECT().SelectDates(mock.Anything, flowID, stay).Return(snap, nil)

	body, _ := json.Marshal(dto.SelectDatesRequest{
		CheckIn:  "2024-06-10",
		CheckOut: "2024-06-13",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/dates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Candidate)
}

func TestHandler_SelectDates_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	body := []byte(`{"check_in":"not-a-date","check_out":"2024-06-13"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/dates", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReviewReservation_OutOfWindow(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	flowSvc.EXPECT().Review(mock.Anything, flowID).Return(workflow.Snapshot{}, domain.ErrOutOfWindow)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/review", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReviewReservation_Success(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	snap := workflow.Snapshot{
		ID:    flowID,
		State: workflow.StateReviewingPayment,
		Quote: &domain.Quote{Nights: 3, TotalPrice: 300},
	}
	flowSvc.EXPECT().Review(mock.Anything, flowID).Return(snap, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/review", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Quote)
	assert.Equal(t, 3, resp.Quote.Nights)
	assert.Equal(t, 300.0, resp.Quote.TotalPrice)
}

func TestHandler_ConfirmReservation_Success(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	snap := workflow.Snapshot{
		ID:    flowID,
		State: workflow.StateCommitted,
		Booking: &domain.Booking{
			ID:     uuid.New().String(),
			Status: domain.BookingStatusConfirmed,
		},
	}
	flowSvc.EXPECT().Confirm(mock.Anything, flowID).Return(snap, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "committed", resp.State)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "confirmed", resp.Booking.Status)
}

func TestHandler_ConfirmReservation_Conflict(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	flowSvc.EXPECT().Confirm(mock.Anything, flowID).Return(workflow.Snapshot{}, domain.ErrConcurrentConflict)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmReservation_PaymentDeclined(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	flowSvc.EXPECT().Confirm(mock.Anything, flowID).Return(workflow.Snapshot{}, domain.ErrConfirmationFailed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_BackReservation_Success(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	snap := workflow.Snapshot{ID: flowID, State: workflow.StateSelectingDates}
	flowSvc.EXPECT().Back(mock.Anything, flowID).Return(snap, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/back", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AbandonReservation_Success(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	flowSvc.EXPECT().Abandon(mock.Anything, flowID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+flowID+"/abandon", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	_, flowSvc, _, _, r := setupRouter(t)

	flowID := uuid.New().String()
	flowSvc.EXPECT().Get(flowID).Return(workflow.Snapshot{}, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/"+flowID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	users := []*domain.User{
		{ID: "u1", Username: "alice", CreatedAt: time.Now()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ListingID: "l1", RequesterID: userID, Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListByRequester(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	listingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	listingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/listings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
