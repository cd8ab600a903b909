package memory

import (
	"context"
	"sort"
	"sync"

	"stayfinder/internal/domain"
)

// Repo is a CatalogRepository held in process memory, safe for concurrent use.
type Repo struct {
	mu     sync.RWMutex
	hotels map[int64]domain.HotelDetail
	dests  []domain.Destination
}

func New(hotels []domain.HotelDetail, dests []domain.Destination) *Repo {
	r := &Repo{hotels: make(map[int64]domain.HotelDetail, len(hotels)), dests: dests}
	for _, h := range hotels {
		r.hotels[h.ID] = h
	}
	return r
}

// NewSample returns a repo seeded with the built-in demo catalog.
func NewSample() *Repo { return New(SampleHotels(), SampleDestinations()) }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.HotelDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hotels[h.ID] = h
	return nil
}

func (r *Repo) DeleteHotel(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.hotels, id)
	return nil
}

// ListListings returns listings ordered by id.
func (r *Repo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Listing, 0, len(r.hotels))
	for _, h := range r.hotels {
		out = append(out, h.Listing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.HotelDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hotels[id]
	if !ok {
		return domain.HotelDetail{}, domain.ErrNotFound
	}
	return h, nil
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Destination, len(r.dests))
	copy(out, r.dests)
	return out, nil
}
