package state

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SergeyKozhin/liferabbit/internal/database"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type fakeTx struct {
	execs      []string
	failOn     int
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, sqlizer database.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, err
	}
	t.execs = append(t.execs, args[0].(string)+" "+query)
	if t.failOn > 0 && len(t.execs) == t.failOn {
		return nil, errors.New("boom")
	}
	return pgconn.CommandTag("INSERT 0 1"), nil
}

func (t *fakeTx) Get(context.Context, interface{}, database.Sqlizer) error {
	return errors.New("not used")
}

func (t *fakeTx) ExecRaw(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errors.New("not used")
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

// fakeDB hands out one transaction and refuses direct statements.
type fakeDB struct {
	fakeTx
	tx *fakeTx
}

func (d *fakeDB) Exec(context.Context, database.Sqlizer) (pgconn.CommandTag, error) {
	return nil, errors.New("statement outside transaction")
}

func (d *fakeDB) BeginTx(context.Context, *pgx.TxOptions) (database.Tx, error) {
	return d.tx, nil
}

func TestSaveManyCommits(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	store := NewStore(db, NewRepository())

	err := store.SaveMany(context.Background(), map[string][]byte{
		"b": []byte(`[]`),
		"a": []byte(`[1]`),
	})
	if err != nil {
		t.Fatalf("SaveMany: %v", err)
	}

	if !db.tx.committed || db.tx.rolledBack {
		t.Errorf("committed=%v rolledBack=%v", db.tx.committed, db.tx.rolledBack)
	}
	if len(db.tx.execs) != 2 || !strings.HasPrefix(db.tx.execs[0], "a ") || !strings.HasPrefix(db.tx.execs[1], "b ") {
		t.Errorf("execs = %v, want a then b", db.tx.execs)
	}
	if !strings.Contains(db.tx.execs[0], "on conflict (state_key)") {
		t.Errorf("upsert missing: %s", db.tx.execs[0])
	}
}

func TestSaveManyRollsBack(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{failOn: 2}}
	store := NewStore(db, NewRepository())

	err := store.SaveMany(context.Background(), map[string][]byte{
		"a": []byte(`[1]`),
		"b": []byte(`[]`),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if db.tx.committed || !db.tx.rolledBack {
		t.Errorf("committed=%v rolledBack=%v", db.tx.committed, db.tx.rolledBack)
	}
}
