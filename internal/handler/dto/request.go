package dto

type CreateListingRequest struct {
	OwnerID           string  `json:"owner_id" binding:"required,uuid"`
	Location          string  `json:"location" binding:"required"`
	AvailabilityStart string  `json:"availability_start" binding:"required"`
	AvailabilityEnd   string  `json:"availability_end" binding:"required"`
	PricePerNight     float64 `json:"price_per_night" binding:"gte=0"`
	Notes             string  `json:"notes"`
	ImageURL          string  `json:"image_url"`
}

type StartReservationRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	UserID    string `json:"user_id" binding:"required,uuid"`
}

type SelectDatesRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
