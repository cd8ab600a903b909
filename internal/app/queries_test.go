package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/storage/memory"
)

// ---- fakes ----

// countingRepo wraps the sample catalog and counts read calls.
type countingRepo struct {
	*memory.Repo
	listCalls  int
	hotelCalls int
	failList   error
}

func newRepo() *countingRepo { return &countingRepo{Repo: memory.NewSample()} }

func (r *countingRepo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	r.listCalls++
	if r.failList != nil {
		return nil, r.failList
	}
	return r.Repo.ListListings(ctx)
}

func (r *countingRepo) GetHotel(ctx context.Context, id int64) (domain.HotelDetail, error) {
	r.hotelCalls++
	return r.Repo.GetHotel(ctx, id)
}

// fakeCache stores JSON like the Redis adapter does.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// ---- tests ----

func TestSearch_FiltersAndDecoratesCards(t *testing.T) {
	q := app.NewQueryService(newRepo(), nil, time.Minute)

	c := domain.DefaultCriteria()
	c.DestinationText = "dubai"
	res, err := q.Search(context.Background(), c)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Count != 1 || len(res.Items) != 1 || res.Items[0].ID != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Items[0].DiscountPercent != 25 {
		t.Fatalf("expected 25%% discount, got %d", res.Items[0].DiscountPercent)
	}

	c = domain.DefaultCriteria()
	c.PriceRange = domain.PriceRange{Min: 400, Max: 100}
	res, err = q.Search(context.Background(), c)
	if err != nil || res.Count != 0 || res.Items == nil {
		t.Fatalf("reversed range should give an empty, non-nil list: %+v (err %v)", res, err)
	}
}

func TestSearch_CatalogCacheMissThenHit(t *testing.T) {
	repo := newRepo()
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	ctx := context.Background()

	if _, err := q.Search(ctx, domain.DefaultCriteria()); err != nil {
		t.Fatalf("err: %v", err)
	}
	res, err := q.Search(ctx, domain.DefaultCriteria())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Count != 6 {
		t.Fatalf("expected 6 hotels, got %d", res.Count)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}
}

func TestSearch_RepoError(t *testing.T) {
	repo := newRepo()
	repo.failList = errors.New("db down")
	q := app.NewQueryService(repo, nil, time.Minute)

	if _, err := q.Search(context.Background(), domain.DefaultCriteria()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	repo := newRepo()
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute)
	ctx := context.Background()

	h, err := q.GetHotel(ctx, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "Grand Luxury Resort & Spa" || h.DiscountPercent != 25 || len(h.Rooms) != 3 {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	// Change the repo to make sure the second read comes from cache.
	_ = repo.UpsertHotel(ctx, domain.HotelDetail{Listing: domain.Listing{ID: 1, Name: "SHOULD NOT SEE THIS", Stars: 5, Price: 1}})

	h2, err := q.GetHotel(ctx, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h2.Name != "Grand Luxury Resort & Spa" || repo.hotelCalls != 1 {
		t.Fatalf("expected cached hotel, got %q after %d repo calls", h2.Name, repo.hotelCalls)
	}

	if _, err := q.GetHotel(ctx, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuote_PricesSelectedRoom(t *testing.T) {
	q := app.NewQueryService(newRepo(), nil, time.Minute)
	ctx := context.Background()

	got, err := q.Quote(ctx, 1, "deluxe", day("2024-07-01"), day("2024-07-04"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Room.ID != "deluxe" || got.Price.Nights != 3 || got.Price.Subtotal != 1197 ||
		got.Price.TaxesAndFees != 120 || got.Price.Total != 1317 || !got.Bookable {
		t.Fatalf("unexpected quote: %+v", got)
	}
	if got.CheckIn != "2024-07-01" || got.CheckOut != "2024-07-04" {
		t.Fatalf("unexpected dates: %s..%s", got.CheckIn, got.CheckOut)
	}

	// unknown room falls back to the first one; missing date means zero price
	got, err = q.Quote(ctx, 1, "penthouse", day("2024-07-01"), nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Room.ID != "standard" || got.Price.Total != 0 || got.Bookable {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestDestinations_CountsMatchingHotels(t *testing.T) {
	q := app.NewQueryService(newRepo(), &fakeCache{}, time.Minute)

	ds, err := q.Destinations(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := map[string]int{"Dubai": 1, "Paris": 1, "New York": 1, "Tokyo": 0}
	if len(ds) != len(want) {
		t.Fatalf("unexpected destinations: %+v", ds)
	}
	for _, d := range ds {
		if want[d.Name] != d.Hotels {
			t.Fatalf("%s: got %d hotels, want %d", d.Name, d.Hotels, want[d.Name])
		}
	}
}
