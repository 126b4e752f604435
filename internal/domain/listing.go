package domain

import "time"

type Listing struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	Location          string    `json:"location"`
	AvailabilityStart time.Time `json:"availability_start"`
	AvailabilityEnd   time.Time `json:"availability_end"`
	PricePerNight     float64   `json:"price_per_night"`
	Notes             string    `json:"notes"`
	ImageURL          string    `json:"image_url"`
	IsBooked          bool      `json:"is_booked"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateListingInput struct {
	OwnerID           string
	Location          string
	AvailabilityStart time.Time
	AvailabilityEnd   time.Time
	PricePerNight     float64
	Notes             string
	ImageURL          string
}
