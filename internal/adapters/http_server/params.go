package httpserver

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stayfinder/internal/domain"
)

// parseDay accepts YYYY-MM-DD or RFC3339; empty means "not selected".
func parseDay(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, &domain.ValidationError{Field: field, Msg: field + " must be YYYY-MM-DD or RFC3339"}
}

// listParam merges repeated and comma-separated values: ?a=x&a=y,z -> [x y z].
func listParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func floatParam(q url.Values, key string, def float64) (float64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	// ParseFloat accepts NaN and Inf; NaN would silently disable the bound
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, &domain.ValidationError{Field: key, Msg: key + " must be a non-negative number"}
	}
	return f, nil
}

// parseCriteria maps search query parameters onto FilterCriteria.
// Missing parameters keep the neutral defaults.
func parseCriteria(q url.Values) (domain.FilterCriteria, error) {
	c := domain.DefaultCriteria()
	c.DestinationText = strings.TrimSpace(q.Get("destination"))

	var err error
	if c.PriceRange.Min, err = floatParam(q, "minPrice", c.PriceRange.Min); err != nil {
		return c, err
	}
	if c.PriceRange.Max, err = floatParam(q, "maxPrice", c.PriceRange.Max); err != nil {
		return c, err
	}
	if c.MaxDistanceKm, err = floatParam(q, "maxDistance", 0); err != nil {
		return c, err
	}

	for _, s := range listParam(q, "stars") {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 5 {
			return c, &domain.ValidationError{Field: "stars", Msg: "stars must be integers between 1 and 5"}
		}
		c.StarsSelected = append(c.StarsSelected, n)
	}
	c.AmenitiesSelected = listParam(q, "amenities")
	return c, nil
}

// stayQuery holds the echo-only search context (dates and guests) of a results page.
type stayQuery struct {
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Guests   int    `json:"guests,omitempty"`
}

func parseStay(q url.Values) (stayQuery, error) {
	var s stayQuery
	in, err := parseDay("checkIn", q.Get("checkIn"))
	if err != nil {
		return s, err
	}
	out, err := parseDay("checkOut", q.Get("checkOut"))
	if err != nil {
		return s, err
	}
	if in != nil {
		s.CheckIn = in.Format("2006-01-02")
	}
	if out != nil {
		s.CheckOut = out.Format("2006-01-02")
	}
	if g := strings.TrimSpace(q.Get("guests")); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil || n < 1 {
			return s, &domain.ValidationError{Field: "guests", Msg: "guests must be a positive integer"}
		}
		s.Guests = n
	}
	return s, nil
}
