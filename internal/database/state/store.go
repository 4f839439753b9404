package state

import (
	"context"
	"fmt"
	"sort"

	"github.com/SergeyKozhin/liferabbit/internal/database"
)

// Store binds the repository to a pool so it can serve as a blob store.
type Store struct {
	db   database.PGX
	repo *Repository
}

func NewStore(db database.PGX, repo *Repository) *Store {
	return &Store{db: db, repo: repo}
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	return s.repo.GetState(ctx, s.db, key)
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	return s.repo.SaveState(ctx, s.db, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.repo.DeleteState(ctx, s.db, key)
}

// SaveMany writes every entry in one transaction, in key order.
func (s *Store) SaveMany(ctx context.Context, entries map[string][]byte) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err = s.repo.SaveState(ctx, tx, k, entries[k]); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
