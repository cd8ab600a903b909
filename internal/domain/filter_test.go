package domain_test

import (
	"reflect"
	"testing"

	"stayfinder/internal/domain"
)

func pfloat(f float64) *float64 { return &f }

func catalog() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Name: "Grand Luxury Resort & Spa", Stars: 5, Price: 299, OriginalPrice: pfloat(399), Location: "Downtown Dubai", Amenities: []string{"Wifi", "Pool", "Parking", "Spa", "Restaurant"}},
		{ID: 2, Name: "Seaside Boutique Hotel", Stars: 4, Price: 159, Location: "Miami Beach", Amenities: []string{"Wifi", "Pool", "Breakfast"}},
		{ID: 3, Name: "Urban Loft Suites", Stars: 4, Price: 189, OriginalPrice: pfloat(220), Location: "New York, Manhattan", Amenities: []string{"Wifi", "Gym", "Restaurant"}},
		{ID: 4, Name: "Mountain View Lodge", Stars: 3, Price: 129, Location: "Swiss Alps", Amenities: []string{"Wifi", "Parking", "Breakfast"}},
		{ID: 5, Name: "City Center Apartments", Stars: 3, Price: 99, OriginalPrice: pfloat(135), Location: "Paris, France", Amenities: []string{"Wifi", "Kitchen", "Workspace"}},
		{ID: 6, Name: "Palm Beach Resort", Stars: 5, Price: 349, Location: "Maldives", Amenities: []string{"Wifi", "Pool", "Beach", "Spa", "Restaurant"}},
	}
}

func ids(ls []domain.Listing) []int64 {
	out := make([]int64, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterListings_DefaultCriteriaIsIdentity(t *testing.T) {
	in := catalog()
	got := domain.FilterListings(in, domain.DefaultCriteria())
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("expected identity, got ids %v", ids(got))
	}

	if got := domain.FilterListings(nil, domain.DefaultCriteria()); len(got) != 0 {
		t.Fatalf("expected empty result for empty catalog, got %d", len(got))
	}
}

func TestFilterListings_Idempotent(t *testing.T) {
	cases := []domain.FilterCriteria{
		{DestinationText: "a", PriceRange: domain.PriceRange{Min: 100, Max: 300}},
		{PriceRange: domain.PriceRange{Max: 500}, StarsSelected: []int{4, 5}, AmenitiesSelected: []string{"Wifi"}},
		{PriceRange: domain.PriceRange{Max: 1000}, AmenitiesSelected: []string{"Pool", "Spa"}},
	}
	for _, c := range cases {
		once := domain.FilterListings(catalog(), c)
		twice := domain.FilterListings(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("not idempotent for %+v: %v vs %v", c, ids(once), ids(twice))
		}
	}
}

func TestFilterListings_PreservesOrderAsSubsequence(t *testing.T) {
	c := domain.FilterCriteria{PriceRange: domain.PriceRange{Min: 100, Max: 400}, AmenitiesSelected: []string{"Wifi"}}
	got := ids(domain.FilterListings(catalog(), c))
	want := []int64{1, 2, 3, 4, 6}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterListings_AmenitiesRequireAll(t *testing.T) {
	in := []domain.Listing{{ID: 9, Stars: 3, Price: 100, Location: "X", Amenities: []string{"Wifi", "Pool"}}}
	c := domain.DefaultCriteria()
	c.AmenitiesSelected = []string{"Wifi", "Parking"}
	if got := domain.FilterListings(in, c); len(got) != 0 {
		t.Fatalf("listing missing Parking must be excluded, got %v", ids(got))
	}

	c.AmenitiesSelected = []string{"Wifi", "Pool"}
	if got := domain.FilterListings(in, c); len(got) != 1 {
		t.Fatalf("listing with all amenities must pass")
	}
}

func TestFilterListings_AmenityMatchIsCaseSensitive(t *testing.T) {
	c := domain.DefaultCriteria()
	c.AmenitiesSelected = []string{"wifi"}
	if got := domain.FilterListings(catalog(), c); len(got) != 0 {
		t.Fatalf("expected exact label match only, got %v", ids(got))
	}
}

func TestFilterListings_DestinationCaseInsensitive(t *testing.T) {
	c := domain.DefaultCriteria()
	c.DestinationText = "dubai"
	got := ids(domain.FilterListings(catalog(), c))
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("got %v, want [1]", got)
	}

	c.DestinationText = "NEW YORK"
	if got := ids(domain.FilterListings(catalog(), c)); !reflect.DeepEqual(got, []int64{3}) {
		t.Fatalf("got %v, want [3]", got)
	}
}

func TestFilterListings_PriceBoundsInclusive(t *testing.T) {
	c := domain.DefaultCriteria()
	c.PriceRange = domain.PriceRange{Min: 99, Max: 159}
	got := ids(domain.FilterListings(catalog(), c))
	want := []int64{2, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterListings_ReversedRangeIsEmpty(t *testing.T) {
	c := domain.DefaultCriteria()
	c.PriceRange = domain.PriceRange{Min: 300, Max: 100}
	if got := domain.FilterListings(catalog(), c); len(got) != 0 {
		t.Fatalf("expected empty, got %v", ids(got))
	}
}

func TestFilterListings_StarsAnyOf(t *testing.T) {
	c := domain.DefaultCriteria()
	c.StarsSelected = []int{3, 5}
	got := ids(domain.FilterListings(catalog(), c))
	want := []int64{1, 4, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterListings_DistanceOnlyAppliesWhenKnown(t *testing.T) {
	in := []domain.Listing{
		{ID: 1, Stars: 3, Price: 100, Location: "A", DistanceKm: pfloat(2)},
		{ID: 2, Stars: 3, Price: 100, Location: "B", DistanceKm: pfloat(12)},
		{ID: 3, Stars: 3, Price: 100, Location: "C"},
	}
	c := domain.DefaultCriteria()
	c.MaxDistanceKm = 10
	got := ids(domain.FilterListings(in, c))
	if !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Fatalf("got %v, want [1 3]", got)
	}

	// sample catalog carries no distance data
	if got := domain.FilterListings(catalog(), c); len(got) != len(catalog()) {
		t.Fatalf("distance filter must be a no-op without distance data")
	}
}

func TestFilterListings_DoesNotMutateInput(t *testing.T) {
	in := catalog()
	c := domain.FilterCriteria{PriceRange: domain.PriceRange{Max: 200}, StarsSelected: []int{4}, AmenitiesSelected: []string{"Wifi"}}
	_ = domain.FilterListings(in, c)
	if !reflect.DeepEqual(in, catalog()) {
		t.Fatalf("input listings mutated")
	}
	if !reflect.DeepEqual(c.StarsSelected, []int{4}) || !reflect.DeepEqual(c.AmenitiesSelected, []string{"Wifi"}) {
		t.Fatalf("criteria mutated: %+v", c)
	}
}

func TestListing_DiscountPercent(t *testing.T) {
	l := catalog()
	if got := l[0].DiscountPercent(); got != 25 {
		t.Fatalf("299 of 399: got %d%%, want 25%%", got)
	}
	if got := l[1].DiscountPercent(); got != 0 {
		t.Fatalf("no original price: got %d%%", got)
	}
	if got := l[4].DiscountPercent(); got != 27 {
		t.Fatalf("99 of 135: got %d%%, want 27%%", got)
	}
}

func TestValidateListing(t *testing.T) {
	ok := catalog()[0]
	if err := domain.ValidateListing(ok); err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	bad := ok
	bad.OriginalPrice = pfloat(100)
	if err := domain.ValidateListing(bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for original < price, got %v", err)
	}

	bad = ok
	bad.Stars = 6
	if err := domain.ValidateListing(bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for stars, got %v", err)
	}

	bad = ok
	bad.Price = 0
	if err := domain.ValidateListing(bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for price, got %v", err)
	}
}
