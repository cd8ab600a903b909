package domain

import (
	"math"
	"time"
)

// TaxRate is the fixed taxes-and-fees surcharge applied to a stay subtotal.
const TaxRate = 0.10

// PriceBreakdown is derived from a stay selection and never stored on its own.
type PriceBreakdown struct {
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Subtotal      float64 `json:"subtotal"`
	TaxesAndFees  float64 `json:"taxesAndFees"`
	Total         float64 `json:"total"`
}

// Nights is the whole-day difference between the two dates, 0 when either is missing.
// Inverted pairs clamp to 0.
func Nights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	n := int(math.Round(checkOut.Sub(*checkIn).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// ComputePriceBreakdown prices a stay in room for the given dates. It never fails.
func ComputePriceBreakdown(room RoomOption, checkIn, checkOut *time.Time) PriceBreakdown {
	n := Nights(checkIn, checkOut)
	if n == 0 {
		return PriceBreakdown{PricePerNight: room.PricePerNight}
	}
	subtotal := room.PricePerNight * float64(n)
	return PriceBreakdown{
		Nights:        n,
		PricePerNight: room.PricePerNight,
		Subtotal:      subtotal,
		TaxesAndFees:  math.Round(subtotal * TaxRate),
		Total:         math.Round(subtotal * (1 + TaxRate)),
	}
}
