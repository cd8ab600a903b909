package app

import (
	"fmt"
	"strconv"
	"strings"

	"stayfinder/internal/domain"
)

/********** alias registries (single source of truth) **********/

var hotelAliases = map[string][]string{
	"id":             {"id", "hotel_id", "hotelId"},
	"name":           {"name", "hotel_name", "hotelName"},
	"image":          {"image", "thumbnail", "main_image", "mainImage"},
	"stars":          {"stars", "star_rating", "rating.stars", "category"},
	"price":          {"price", "price.amount", "nightly_rate", "rate"},
	"original_price": {"original_price", "originalPrice", "price.original", "rack_rate"},
	"location":       {"location", "address.line", "address_raw", "full_address"},
	"city":           {"address.city", "city"},
	"country":        {"address.country", "country"},
	"amenities":      {"amenities", "facilities"},
	"distance":       {"distance_km", "distanceKm", "location.distance_km"},
	"description":    {"description", "markdown_description", "description_long"},
	"images":         {"images", "photos"},
	"rating":         {"guest_rating", "review_score", "rating.score", "rating"},
	"lat":            {"latitude", "lat", "location.lat"},
	"lon":            {"longitude", "lon", "lng", "location.lon", "location.lng"},
	"rooms":          {"rooms", "roomTypes", "room_types"},
	"reviews":        {"reviews"},
}

var roomAliases = map[string][]string{
	"id":    {"id", "key", "code"},
	"name":  {"name", "title"},
	"price": {"price_per_night", "pricePerNight", "price", "rate"},
}

var reviewAliases = map[string][]string{
	"id":      {"id", "review_id"},
	"user":    {"user", "author", "name", "reviewer.name"},
	"rating":  {"rating", "score"},
	"comment": {"comment", "text", "review", "body"},
	"date":    {"date", "created_at", "createdAt"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstStr: first non-empty string under any alias of key.
func firstStr(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s, ok := lookupAny(m, p).(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstFloat: number under any alias (float64/int/string like "8,5").
func firstFloat(m map[string]any, aliases map[string][]string, key string) *float64 {
	for _, p := range aliases[key] {
		switch v := lookupAny(m, p).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstStrings: accept []any with either strings or {name/url/src}.
func firstStrings(m map[string]any, aliases map[string][]string, key string) []string {
	for _, p := range aliases[key] {
		raw, ok := lookupAny(m, p).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				for _, k := range []string{"name", "url", "src"} {
					if s, ok := t[k].(string); ok && s != "" {
						out = append(out, s)
						break
					}
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func firstObjects(m map[string]any, aliases map[string][]string, key string) []map[string]any {
	for _, p := range aliases[key] {
		raw, ok := lookupAny(m, p).([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, it := range raw {
			if obj, ok := it.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, sep)
}

/********** hotel mapper **********/

// mapHotel turns a raw feed payload into a catalog entry and validates it.
func mapHotel(p map[string]any) (domain.HotelDetail, error) {
	var h domain.HotelDetail

	id := firstFloat(p, hotelAliases, "id")
	if id == nil || *id <= 0 {
		return h, &domain.ValidationError{Field: "id", Msg: "feed hotel without id"}
	}
	h.ID = int64(*id)
	h.Name = firstStr(p, hotelAliases, "name")
	h.Image = firstStr(p, hotelAliases, "image")
	if s := firstFloat(p, hotelAliases, "stars"); s != nil {
		h.Stars = int(*s)
	}
	if f := firstFloat(p, hotelAliases, "price"); f != nil {
		h.Price = *f
	}
	h.OriginalPrice = firstFloat(p, hotelAliases, "original_price")

	// Location: explicit text first, otherwise compose "city, country".
	h.Location = firstStr(p, hotelAliases, "location")
	if h.Location == "" {
		h.Location = joinNonEmpty(", ", firstStr(p, hotelAliases, "city"), firstStr(p, hotelAliases, "country"))
	}

	h.Amenities = firstStrings(p, hotelAliases, "amenities")
	h.DistanceKm = firstFloat(p, hotelAliases, "distance")
	h.Description = firstStr(p, hotelAliases, "description")
	h.Images = firstStrings(p, hotelAliases, "images")
	if h.Image == "" && len(h.Images) > 0 {
		h.Image = h.Images[0]
	}
	// a nested rating object is not a guest score
	if r := firstFloat(p, hotelAliases, "rating"); r != nil && *r <= 10 {
		h.Rating = r
	}
	lat, lon := firstFloat(p, hotelAliases, "lat"), firstFloat(p, hotelAliases, "lon")
	if lat != nil && lon != nil {
		h.Coords = &domain.Coords{Lat: *lat, Lon: *lon}
	}

	h.Rooms = mapRooms(firstObjects(p, hotelAliases, "rooms"))
	if len(h.Rooms) == 0 && h.Price > 0 {
		h.Rooms = []domain.RoomOption{{ID: "standard", Name: "Standard Room", PricePerNight: h.Price}}
	}
	h.Reviews = mapReviews(firstObjects(p, hotelAliases, "reviews"))

	if err := domain.ValidateListing(h.Listing); err != nil {
		return domain.HotelDetail{}, fmt.Errorf("map hotel %d: %w", h.ID, err)
	}
	return h, nil
}

func mapRooms(in []map[string]any) []domain.RoomOption {
	out := make([]domain.RoomOption, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, r := range in {
		price := firstFloat(r, roomAliases, "price")
		if price == nil || *price <= 0 {
			continue
		}
		rm := domain.RoomOption{
			ID:            firstStr(r, roomAliases, "id"),
			Name:          firstStr(r, roomAliases, "name"),
			PricePerNight: *price,
		}
		if rm.ID == "" {
			if n := firstFloat(r, roomAliases, "id"); n != nil {
				rm.ID = strconv.FormatInt(int64(*n), 10)
			} else {
				rm.ID = strings.ToLower(strings.ReplaceAll(rm.Name, " ", "-"))
			}
		}
		if rm.ID == "" {
			continue
		}
		// room ids must stay unique within a hotel
		if _, dup := seen[rm.ID]; dup {
			continue
		}
		seen[rm.ID] = struct{}{}
		out = append(out, rm)
	}
	return out
}

func mapReviews(in []map[string]any) []domain.Review {
	out := make([]domain.Review, 0, len(in))
	for i, r := range in {
		rv := domain.Review{
			ID:      int64(i + 1),
			User:    firstStr(r, reviewAliases, "user"),
			Comment: firstStr(r, reviewAliases, "comment"),
		}
		if n := firstFloat(r, reviewAliases, "id"); n != nil {
			rv.ID = int64(*n)
		}
		if f := firstFloat(r, reviewAliases, "rating"); f != nil {
			rv.Rating = *f
		}
		if d := firstStr(r, reviewAliases, "date"); len(d) >= 10 {
			rv.Date = d[:10]
		}
		if rv.Comment == "" {
			continue
		}
		out = append(out, rv)
	}
	return out
}
