package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/ports"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/infrastructure/persistence"
)

var ErrDatabaseURLNotSet = errors.New("DATABASE_URL environment variable is not set")

// OpenStore builds the directory store selected by cfg.StoreKind. The returned func releases
// the store's resources.
func OpenStore(ctx context.Context, cfg Config) (ports.DirectoryStore, func(), error) {
	switch cfg.StoreKind {
	case "", StoreKindPostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, ErrDatabaseURLNotSet
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewDirectoryPGStore(pool), pool.Close, nil
	case StoreKindSQLite:
		s, err := persistence.OpenDirectorySQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if cfg.SQLiteSeed {
			if err := s.Seed(ctx, persistence.DemoDataset()); err != nil {
				_ = s.Close()
				return nil, nil, err
			}
		}
		return s, func() { _ = s.Close() }, nil
	case StoreKindMemory:
		return persistence.NewDirectoryMemoryStore(persistence.DemoDataset()), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("server: unknown DIRECTORY_STORE %q", cfg.StoreKind)
	}
}
