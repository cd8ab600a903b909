package httpserver

import (
	"math"
	"net/url"
	"testing"

	"stayfinder/internal/domain"
)

func TestParseCriteria(t *testing.T) {
	c, err := parseCriteria(url.Values{
		"destination": {" dubai "},
		"minPrice":    {"100"},
		"maxPrice":    {"300"},
		"stars":       {"3,5", "4"},
		"amenities":   {"Wifi, Pool"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.DestinationText != "dubai" || c.PriceRange.Min != 100 || c.PriceRange.Max != 300 {
		t.Fatalf("unexpected criteria: %+v", c)
	}
	if len(c.StarsSelected) != 3 || len(c.AmenitiesSelected) != 2 || c.AmenitiesSelected[1] != "Pool" {
		t.Fatalf("unexpected lists: %+v", c)
	}

	c, err = parseCriteria(url.Values{})
	if err != nil || c.PriceRange.Max != math.MaxFloat64 || c.MaxDistanceKm != 0 {
		t.Fatalf("empty query should keep defaults: %+v (err %v)", c, err)
	}
}

func TestParseCriteria_RejectsNonFiniteNumbers(t *testing.T) {
	for _, q := range []url.Values{
		{"minPrice": {"NaN"}},
		{"minPrice": {"500"}, "maxPrice": {"NaN"}},
		{"maxPrice": {"+Inf"}},
		{"maxDistance": {"nan"}},
	} {
		if _, err := parseCriteria(q); !domain.IsValidation(err) {
			t.Fatalf("%v: expected validation error, got %v", q, err)
		}
	}
}
