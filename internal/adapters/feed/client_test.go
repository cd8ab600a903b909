package feed_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stayfinder/internal/adapters/feed"
	"stayfinder/internal/domain"
)

func TestClient_GetHotel_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 123.0, "name": "Grand"})
		}
	}))
	defer ts.Close()

	cl, err := feed.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.GetHotel(ctx, 123)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["name"] != "Grand" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetHotel_FallsBackToLegacyPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotel/7", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7.0})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	cl, _ := feed.New(ts.URL, "", 100)
	got, err := cl.GetHotel(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["id"] != 7.0 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_GetHotel_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, _ := feed.New(ts.URL, "k", 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.GetHotel(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_GetHotel_Forbidden(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	cl, _ := feed.New(ts.URL, "k", 100)
	if _, err := cl.GetHotel(context.Background(), 1); !errors.Is(err, feed.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClient_ListHotelIDs_BothShapes(t *testing.T) {
	for name, body := range map[string]string{
		"array":   `[1,2,3]`,
		"wrapped": `{"ids":[1,2,3]}`,
	} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/hotels" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(body))
		}))

		cl, _ := feed.New(ts.URL+"/", "", 100)
		ids, err := cl.ListHotelIDs(context.Background())
		ts.Close()
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		if len(ids) != 3 || ids[2] != 3 {
			t.Fatalf("%s: unexpected ids %v", name, ids)
		}
	}
}

func TestNew_RequiresBase(t *testing.T) {
	if _, err := feed.New("", "k", 1); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
