// Package storage selects and connects the catalog store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
	"stayfinder/internal/storage/memory"
	mysqlrepo "stayfinder/internal/storage/mysql"
	pgrepo "stayfinder/internal/storage/postgres"
)

// Open connects the configured catalog backend and returns a close func.
// The memory backend is seeded with the demo catalog.
func Open(ctx context.Context, cfg shared.Config) (domain.CatalogRepository, func(), error) {
	switch cfg.CatalogBackend {
	case shared.BackendMySQL:
		db, err := openDB(ctx, "mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return mysqlrepo.New(db), func() { _ = db.Close() }, nil
	case shared.BackendPostgres:
		db, err := openDB(ctx, "postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pgrepo.New(db), func() { _ = db.Close() }, nil
	default:
		return memory.NewSample(), func() {}, nil
	}
}

func openDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open %s: %w", driver, err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	log.Info().Str("driver", driver).Msg("database connection ok")
	return db, nil
}
