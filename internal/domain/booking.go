package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          string        `json:"id"`
	ListingID   string        `json:"listing_id"`
	RequesterID string        `json:"requester_id"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// StayRange is a candidate check-in/check-out pair under validation.
// It is never persisted on its own.
type StayRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Nights rounds the range up to whole days, never below one night.
func (r StayRange) Nights() int {
	n := int(math.Ceil(r.CheckOut.Sub(r.CheckIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

type Quote struct {
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}
