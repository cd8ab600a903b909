package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// ValidationError is user-correctable input rejected before any work is done.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StaySelection is the caller-held state of the booking widget on a hotel page.
type StaySelection struct {
	CheckIn      *time.Time
	CheckOut     *time.Time
	GuestCount   int
	SelectedRoom RoomOption
}

// Breakdown recomputes the price for the current selection.
func (s StaySelection) Breakdown() PriceBreakdown {
	return ComputePriceBreakdown(s.SelectedRoom, s.CheckIn, s.CheckOut)
}

// ValidateForBooking is the gate in front of any booking confirmation.
func (s StaySelection) ValidateForBooking() error {
	if s.CheckIn == nil || s.CheckOut == nil {
		return &ValidationError{Field: "dates", Msg: "select check-in and check-out dates"}
	}
	// no date picker guards the API, so the gate rejects empty stays itself
	if Nights(s.CheckIn, s.CheckOut) < 1 {
		return &ValidationError{Field: "checkOut", Msg: "check-out must be after check-in"}
	}
	if s.GuestCount <= 0 {
		return &ValidationError{Field: "guests", Msg: "guest count must be positive"}
	}
	return nil
}

// BookingConfirmation is returned once the gate passes. It is not persisted.
type BookingConfirmation struct {
	Reference string         `json:"reference"`
	HotelID   int64          `json:"hotelId"`
	HotelName string         `json:"hotelName"`
	Room      RoomOption     `json:"room"`
	Guests    int            `json:"guests"`
	CheckIn   string         `json:"checkIn"`
	CheckOut  string         `json:"checkOut"`
	Price     PriceBreakdown `json:"price"`
}
