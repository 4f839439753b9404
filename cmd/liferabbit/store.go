package main

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/liferabbit/internal/config"
	"github.com/SergeyKozhin/liferabbit/internal/database"
	"github.com/SergeyKozhin/liferabbit/internal/database/state"
	"github.com/SergeyKozhin/liferabbit/internal/redis"
	"github.com/SergeyKozhin/liferabbit/internal/sqlite"
	"go.uber.org/zap"
)

// stateStore is the key/value persistence shared by the session and the
// schedules service.
type stateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	SaveMany(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
}

func newStateStore(ctx context.Context, logger *zap.SugaredLogger) (stateStore, error) {
	switch driver := config.StoreDriver(); driver {
	case config.StoreDriverSQLite:
		db, err := sqlite.NewDB(config.SQLitePath(), logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlite.NewStateRepository(db), nil

	case config.StoreDriverRedis:
		return redis.NewStateRepository(redis.NewRedisPool(logger)), nil

	case config.StoreDriverPostgres:
		db, err := database.NewPGX(ctx)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		repo := state.NewRepository()
		if err := repo.EnsureSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("ensure state schema: %w", err)
		}
		return state.NewStore(db, repo), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
