package state

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/liferabbit/internal/database"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetState(ctx context.Context, q database.Queryable, key string) ([]byte, error) {
	qb := database.PSQL.
		Select("state_key", "value", "updated_at").
		From(database.StateTable).
		Where(sq.Eq{"state_key": key})

	dto := &stateDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return dto.Value, nil
}
