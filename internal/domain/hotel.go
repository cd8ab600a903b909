package domain

import (
	"fmt"
	"math"
)

// Listing is a hotel entry in the catalog as shown on a result card.
type Listing struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image,omitempty"`
	Stars         int      `json:"stars"`
	Price         float64  `json:"price"`                   // nightly base rate
	OriginalPrice *float64 `json:"originalPrice,omitempty"` // pre-discount rate
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	DistanceKm    *float64 `json:"distanceKm,omitempty"` // from city center, when known
}

// DiscountPercent is the whole-percent saving against OriginalPrice, 0 when there is none.
func (l Listing) DiscountPercent() int {
	if l.OriginalPrice == nil || *l.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((1 - l.Price / *l.OriginalPrice) * 100))
}

// HasAmenity reports an exact (case-sensitive) label match.
func (l Listing) HasAmenity(a string) bool {
	for _, have := range l.Amenities {
		if have == a {
			return true
		}
	}
	return false
}

// ValidateListing checks the catalog invariants importers rely on.
func ValidateListing(l Listing) error {
	if l.Price <= 0 {
		return &ValidationError{Field: "price", Msg: fmt.Sprintf("listing %d: price must be positive", l.ID)}
	}
	if l.OriginalPrice != nil && *l.OriginalPrice < l.Price {
		return &ValidationError{Field: "originalPrice", Msg: fmt.Sprintf("listing %d: original price below price", l.ID)}
	}
	if l.Stars < 1 || l.Stars > 5 {
		return &ValidationError{Field: "stars", Msg: fmt.Sprintf("listing %d: stars must be within 1..5", l.ID)}
	}
	return nil
}

type RoomOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
}

type Review struct {
	ID      int64   `json:"id"`
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"` // YYYY-MM-DD
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HotelDetail is the full hotel page: the card listing plus rooms, reviews and media.
type HotelDetail struct {
	Listing
	Description string       `json:"description,omitempty"`
	Images      []string     `json:"images,omitempty"`
	Rating      *float64     `json:"rating,omitempty"` // guest score out of 10
	Reviews     []Review     `json:"reviews,omitempty"`
	Rooms       []RoomOption `json:"rooms"`
	Coords      *Coords      `json:"coords,omitempty"`
}

// Room resolves a room by id, falling back to the first room for an empty or unknown id.
// ok is false only when the hotel has no rooms at all.
func (h HotelDetail) Room(id string) (RoomOption, bool) {
	if len(h.Rooms) == 0 {
		return RoomOption{}, false
	}
	for _, r := range h.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return h.Rooms[0], true
}

// Destination is a featured city on the home page.
type Destination struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
	Hotels int    `json:"hotels"`
}
