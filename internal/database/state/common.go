package state

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/liferabbit/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

const schema = `create table if not exists ` + database.StateTable + ` (
	state_key  text primary key,
	value      bytea not null,
	updated_at timestamptz not null default now()
)`

func (*Repository) EnsureSchema(ctx context.Context, q database.Queryable) error {
	if _, err := q.ExecRaw(ctx, schema); err != nil {
		return fmt.Errorf("create %s: %w", database.StateTable, err)
	}

	return nil
}
