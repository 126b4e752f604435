package domain

import "errors"

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrReservationNotFound = errors.New("reservation flow not found")
)

var (
	ErrInvalidRange       = errors.New("check-out must be after check-in")
	ErrOutOfWindow        = errors.New("dates are outside the listing availability window")
	ErrListingBooked      = errors.New("listing is already booked")
	ErrConcurrentConflict = errors.New("listing was booked by a concurrent reservation")
	ErrBookingNotPending  = errors.New("booking is not in pending status")
)

var (
	ErrConfirmationFailed = errors.New("payment confirmation failed")
	ErrInvalidTransition  = errors.New("operation is not allowed in the current reservation state")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
