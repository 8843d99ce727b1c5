package core

import (
	"context"
	"fmt"
	"strings"

	"carehome/internal/config"
	"carehome/internal/infra/persistence/file"
	"carehome/internal/infra/persistence/memory"
	"carehome/internal/infra/persistence/postgres"
	redisstore "carehome/internal/infra/persistence/redis"
	"carehome/internal/infra/persistence/sqlite"
	"carehome/pkg/domain"
)

// StorageDriver identifies a snapshot backend.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageFile     StorageDriver = "file"     // single JSON or YAML document
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
	StorageRedis    StorageDriver = "redis"    // Redis hash
)

// OpenSnapshotStore selects a snapshot backend from cfg. The returned close
// function releases connections and is never nil.
func OpenSnapshotStore(ctx context.Context, cfg config.StorageConfig) (domain.SnapshotStore, func() error, error) {
	noop := func() error { return nil }
	switch StorageDriver(strings.ToLower(cfg.Driver)) {
	case StorageMemory:
		return memory.NewStore(), noop, nil
	case StorageFile, "":
		s, err := file.NewStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case StorageSQLite:
		s, err := sqlite.NewStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case StoragePostgres:
		s, err := postgres.NewStore(ctx, cfg.Postgres)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case StorageRedis:
		s, err := redisstore.NewStore(ctx, redisstore.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %s", cfg.Driver)
	}
}
