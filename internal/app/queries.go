package app

import (
	"context"
	"fmt"
	"time"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

const (
	keyListings     = "catalog:listings"
	keyDestinations = "catalog:destinations"
)

func hotelKey(id int64) string { return fmt.Sprintf("hotel:%d", id) }

// ListingCard is a listing as shown in a result grid.
type ListingCard struct {
	domain.Listing
	DiscountPercent int `json:"discountPercent"`
}

type SearchResult struct {
	Items []ListingCard `json:"items"`
	Count int           `json:"count"`
}

type HotelPage struct {
	domain.HotelDetail
	DiscountPercent int `json:"discountPercent"`
}

type Quote struct {
	HotelID  int64                 `json:"hotelId"`
	Room     domain.RoomOption     `json:"room"`
	CheckIn  string                `json:"checkIn,omitempty"`
	CheckOut string                `json:"checkOut,omitempty"`
	Price    domain.PriceBreakdown `json:"price"`
	// Bookable mirrors the booking gate so clients can enable the action.
	Bookable bool `json:"bookable"`
}

type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires the read side; cache may be nil.
func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

// listings is a read-through of the full catalog.
func (s *QueryService) listings(ctx context.Context) ([]domain.Listing, error) {
	var ls []domain.Listing
	if s.cacheGet(ctx, keyListings, &ls) {
		return ls, nil
	}
	ls, err := s.repo.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	s.cacheSet(ctx, keyListings, ls)
	return ls, nil
}

// Search applies the criteria to the current catalog.
func (s *QueryService) Search(ctx context.Context, c domain.FilterCriteria) (SearchResult, error) {
	ls, err := s.listings(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	matched := domain.FilterListings(ls, c)
	out := SearchResult{Items: make([]ListingCard, 0, len(matched)), Count: len(matched)}
	for _, l := range matched {
		out.Items = append(out.Items, ListingCard{Listing: l, DiscountPercent: l.DiscountPercent()})
	}
	observability.ObserveSearch(out.Count)
	return out, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int64) (HotelPage, error) {
	var h domain.HotelDetail
	if !s.cacheGet(ctx, hotelKey(id), &h) {
		var err error
		if h, err = s.repo.GetHotel(ctx, id); err != nil {
			return HotelPage{}, err
		}
		s.cacheSet(ctx, hotelKey(id), h)
	}
	return HotelPage{HotelDetail: h, DiscountPercent: h.DiscountPercent()}, nil
}

// Quote prices a stay for a hotel room; an empty or unknown room id selects the first room.
func (s *QueryService) Quote(ctx context.Context, hotelID int64, roomID string, checkIn, checkOut *time.Time) (Quote, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return Quote{}, err
	}
	room, ok := h.Room(roomID)
	if !ok {
		return Quote{}, &domain.ValidationError{Field: "room", Msg: "hotel has no rooms"}
	}
	sel := domain.StaySelection{CheckIn: checkIn, CheckOut: checkOut, GuestCount: 1, SelectedRoom: room}
	return Quote{
		HotelID:  hotelID,
		Room:     room,
		CheckIn:  formatDay(checkIn),
		CheckOut: formatDay(checkOut),
		Price:    sel.Breakdown(),
		Bookable: sel.ValidateForBooking() == nil,
	}, nil
}

// Destinations lists featured cities with how many catalog hotels match each name.
func (s *QueryService) Destinations(ctx context.Context) ([]domain.Destination, error) {
	var ds []domain.Destination
	if !s.cacheGet(ctx, keyDestinations, &ds) {
		var err error
		if ds, err = s.repo.ListDestinations(ctx); err != nil {
			return nil, fmt.Errorf("list destinations: %w", err)
		}
		s.cacheSet(ctx, keyDestinations, ds)
	}
	ls, err := s.listings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ds {
		c := domain.DefaultCriteria()
		c.DestinationText = ds[i].Name
		ds[i].Hotels = len(domain.FilterListings(ls, c))
	}
	return ds, nil
}

func formatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
