package state

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/liferabbit/internal/database"
)

func (*Repository) SaveState(ctx context.Context, q database.Queryable, key string, value []byte) error {
	qb := database.PSQL.
		Insert(database.StateTable).
		Columns("state_key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("on conflict (state_key) do update set value = excluded.value, updated_at = excluded.updated_at")

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteState(ctx context.Context, q database.Queryable, key string) error {
	qb := database.PSQL.
		Delete(database.StateTable).
		Where(sq.Eq{"state_key": key})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
