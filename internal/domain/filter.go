package domain

import (
	"math"
	"strings"
)

// PriceRange bounds a nightly price, both ends inclusive.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterCriteria is the set of user-chosen constraints applied to the catalog.
// Zero-valued sets mean "no filter" for that criterion.
type FilterCriteria struct {
	DestinationText   string     `json:"destination"`
	PriceRange        PriceRange `json:"priceRange"`
	StarsSelected     []int      `json:"stars"`
	AmenitiesSelected []string   `json:"amenities"`
	MaxDistanceKm     float64    `json:"maxDistanceKm"` // 0 = no distance filter
}

// DefaultCriteria passes every listing.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{PriceRange: PriceRange{Min: 0, Max: math.MaxFloat64}}
}

// FilterListings returns, in input order, the listings that satisfy every criterion.
// Neither argument is modified. A reversed price range yields an empty result.
func FilterListings(listings []Listing, c FilterCriteria) []Listing {
	out := make([]Listing, 0, len(listings))
	if c.PriceRange.Min > c.PriceRange.Max {
		return out
	}
	dest := strings.ToLower(c.DestinationText)
	for _, l := range listings {
		if c.matches(l, dest) {
			out = append(out, l)
		}
	}
	return out
}

// Matches reports whether a single listing passes the criteria.
func (c FilterCriteria) Matches(l Listing) bool {
	return c.matches(l, strings.ToLower(c.DestinationText))
}

func (c FilterCriteria) matches(l Listing, dest string) bool {
	if dest != "" && !strings.Contains(strings.ToLower(l.Location), dest) {
		return false
	}
	if l.Price < c.PriceRange.Min || l.Price > c.PriceRange.Max {
		return false
	}
	if len(c.StarsSelected) > 0 && !containsInt(c.StarsSelected, l.Stars) {
		return false
	}
	// every selected amenity must be present, matched exactly
	for _, a := range c.AmenitiesSelected {
		if !l.HasAmenity(a) {
			return false
		}
	}
	// listings without distance data are never excluded by distance
	if c.MaxDistanceKm > 0 && l.DistanceKm != nil && *l.DistanceKm > c.MaxDistanceKm {
		return false
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
