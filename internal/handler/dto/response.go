package dto

import (
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/workflow"
)

const dateLayout = "2006-01-02"

type ListingResponse struct {
	ID                string  `json:"id"`
	OwnerID           string  `json:"owner_id"`
	Location          string  `json:"location"`
	AvailabilityStart string  `json:"availability_start"`
	AvailabilityEnd   string  `json:"availability_end"`
	PricePerNight     float64 `json:"price_per_night"`
	Notes             string  `json:"notes"`
	ImageURL          string  `json:"image_url"`
	IsBooked          bool    `json:"is_booked"`
	CreatedAt         string  `json:"created_at"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	ListingID   string `json:"listing_id"`
	RequesterID string `json:"requester_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type StayRangeResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type QuoteResponse struct {
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

type ReservationResponse struct {
	ID          string             `json:"id"`
	ListingID   string             `json:"listing_id"`
	RequesterID string             `json:"requester_id"`
	State       string             `json:"state"`
	Candidate   *StayRangeResponse `json:"candidate,omitempty"`
	Quote       *QuoteResponse     `json:"quote,omitempty"`
	Booking     *BookingResponse   `json:"booking,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:                l.ID,
		OwnerID:           l.OwnerID,
		Location:          l.Location,
		AvailabilityStart: l.AvailabilityStart.Format(dateLayout),
		AvailabilityEnd:   l.AvailabilityEnd.Format(dateLayout),
		PricePerNight:     l.PricePerNight,
		Notes:             l.Notes,
		ImageURL:          l.ImageURL,
		IsBooked:          l.IsBooked,
		CreatedAt:         l.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		ListingID:   b.ListingID,
		RequesterID: b.RequesterID,
		CheckIn:     b.CheckIn.Format(time.RFC3339),
		CheckOut:    b.CheckOut.Format(time.RFC3339),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(snap workflow.Snapshot) ReservationResponse {
	resp := ReservationResponse{
		ID:          snap.ID,
		ListingID:   snap.ListingID,
		RequesterID: snap.RequesterID,
		State:       string(snap.State),
	}
	if snap.Candidate != nil {
		resp.Candidate = &StayRangeResponse{
			CheckIn:  snap.Candidate.CheckIn.Format(time.RFC3339),
			CheckOut: snap.Candidate.CheckOut.Format(time.RFC3339),
		}
	}
	if snap.Quote != nil {
		resp.Quote = &QuoteResponse{
			Nights:     snap.Quote.Nights,
			TotalPrice: snap.Quote.TotalPrice,
		}
	}
	if snap.Booking != nil {
		b := ToBookingResponse(snap.Booking)
		resp.Booking = &b
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
