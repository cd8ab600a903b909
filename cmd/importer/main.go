package main

import (
	"context"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayfinder/internal/adapters/feed"
	"stayfinder/internal/adapters/observability"
	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
	"stayfinder/internal/storage"
	"stayfinder/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.CatalogBackend == shared.BackendMemory {
		log.Warn().Msg("CATALOG_BACKEND=memory: imported hotels are not persisted")
	}
	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.CatalogBackend).Msg("catalog unavailable")
	}
	defer closeRepo()

	// evict stale entries the API may be serving
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	if cfg.FeedBase == "" {
		seedSample(ctx, app.NewImportService(nil, repo, cache))
		return
	}

	client, err := feed.New(cfg.FeedBase, cfg.FeedKey, cfg.FeedRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize feed client")
	}
	imp := app.NewImportService(client, repo, cache)

	ids, err := imp.HotelIDs(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list feed hotels failed")
	}
	log.Info().
		Str("base", cfg.FeedBase).
		Int("workers", cfg.Workers).
		Int("hotels", len(ids)).
		Msg("importer starting")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)
	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("import interrupted")
			break
		}

		wg.Add(1)
		go func(hotelID int64) {
			defer wg.Done()
			defer sem.Release(1)

			if err := imp.ImportHotel(ctx, hotelID); err != nil {
				failed.Add(1)
				log.Warn().Int64("id", hotelID).Err(err).Msg("import failed")
				return
			}
			log.Debug().Int64("id", hotelID).Msg("import ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int("hotels", len(ids)).Int64("failed", failed.Load()).Msg("import completed")
}

func seedSample(ctx context.Context, imp *app.ImportService) {
	hotels := memory.SampleHotels()
	for _, h := range hotels {
		if err := imp.Store(ctx, h); err != nil {
			log.Fatal().Int64("id", h.ID).Err(err).Msg("seed failed")
		}
	}
	log.Info().Int("hotels", len(hotels)).Msg("no FEED_BASE_URL, seeded demo catalog")
}
