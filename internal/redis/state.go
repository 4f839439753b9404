package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/gomodule/redigo/redis"
)

type connPool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

// StateRepository keeps whole-list blobs under plain string keys.
type StateRepository struct {
	pool connPool
}

func NewStateRepository(pool connPool) *StateRepository {
	return &StateRepository{pool: pool}
}

func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET %s: %w", key, err)
	}

	return data, nil
}

func (r *StateRepository) Save(ctx context.Context, key string, value []byte) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("SET", key, value); err != nil {
		return fmt.Errorf("SET %s: %w", key, err)
	}

	return nil
}

func (r *StateRepository) Delete(ctx context.Context, key string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", key); err != nil {
		return fmt.Errorf("DEL %s: %w", key, err)
	}

	return nil
}

// SaveMany sets every entry inside one MULTI/EXEC block.
func (r *StateRepository) SaveMany(ctx context.Context, entries map[string][]byte) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := conn.Send("MULTI"); err != nil {
		return fmt.Errorf("MULTI: %w", err)
	}
	for _, k := range keys {
		if err := conn.Send("SET", k, entries[k]); err != nil {
			return fmt.Errorf("SET %s: %w", k, err)
		}
	}

	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("EXEC: %w", err)
	}

	return nil
}
