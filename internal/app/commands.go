package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/domain"
)

type ImportService struct {
	feed  domain.CatalogFeed
	repo  domain.CatalogRepository
	cache domain.Cache
}

// NewImportService wires the write side; feed and cache may be nil.
func NewImportService(f domain.CatalogFeed, r domain.CatalogRepository, cache domain.Cache) *ImportService {
	return &ImportService{feed: f, repo: r, cache: cache}
}

// ImportHotel pulls one hotel from the feed into the catalog.
// A hotel the feed no longer has is removed; invalid payloads are skipped.
func (s *ImportService) ImportHotel(ctx context.Context, id int64) error {
	if s.feed == nil {
		return errors.New("import: no feed configured")
	}
	p, err := s.feed.GetHotel(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Int64("id", id).Msg("hotel gone from feed, removing")
			if derr := s.repo.DeleteHotel(ctx, id); derr != nil {
				return fmt.Errorf("delete hotel %d: %w", id, derr)
			}
			s.invalidate(ctx, id)
			return nil
		}
		return fmt.Errorf("fetch hotel %d: %w", id, err)
	}

	h, err := mapHotel(p)
	if err != nil {
		if domain.IsValidation(err) {
			log.Warn().Int64("id", id).Err(err).Msg("skipping invalid feed hotel")
			return nil
		}
		return err
	}
	return s.Store(ctx, h)
}

// Store validates and upserts a hotel, then evicts the affected cache entries.
func (s *ImportService) Store(ctx context.Context, h domain.HotelDetail) error {
	if err := domain.ValidateListing(h.Listing); err != nil {
		return err
	}
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %d: %w", h.ID, err)
	}
	s.invalidate(ctx, h.ID)
	return nil
}

// HotelIDs lists what the feed currently offers.
func (s *ImportService) HotelIDs(ctx context.Context) ([]int64, error) {
	if s.feed == nil {
		return nil, errors.New("import: no feed configured")
	}
	return s.feed.ListHotelIDs(ctx)
}

// invalidate drops the hotel page and the catalog list; destination counts derive from the list.
func (s *ImportService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	_ = s.cache.Del(ctx, keyListings)
}
