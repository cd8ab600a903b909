package domain

import "context"

type CatalogRepository interface {
	// Write paths
	UpsertHotel(ctx context.Context, h HotelDetail) error
	DeleteHotel(ctx context.Context, id int64) error

	// Read paths
	ListListings(ctx context.Context) ([]Listing, error)
	GetHotel(ctx context.Context, id int64) (HotelDetail, error)
	ListDestinations(ctx context.Context) ([]Destination, error)
}

// CatalogFeed is a partner source of raw hotel payloads.
type CatalogFeed interface {
	ListHotelIDs(ctx context.Context) ([]int64, error)
	GetHotel(ctx context.Context, id int64) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
