package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/gomodule/redigo/redis"
)

type fakePool struct {
	data    map[string][]byte
	closed  int
	err     error
	execErr error
}

func (p *fakePool) GetContext(context.Context) (redis.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &fakeConn{pool: p}, nil
}

type fakeConn struct {
	pool   *fakePool
	queued [][]interface{}
}

func (c *fakeConn) Close() error {
	c.pool.closed++
	return nil
}

func (c *fakeConn) Err() error { return nil }

func (c *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	var key string
	if len(args) > 0 {
		key, _ = args[0].(string)
	}

	switch cmd {
	case "EXEC":
		if len(c.queued) == 0 || c.queued[0][0] != "MULTI" {
			return nil, errors.New("EXEC without MULTI")
		}
		if c.pool.execErr != nil {
			c.queued = nil
			return nil, c.pool.execErr
		}
		replies := make([]interface{}, 0, len(c.queued)-1)
		for _, q := range c.queued[1:] {
			c.pool.data[q[1].(string)] = q[2].([]byte)
			replies = append(replies, "OK")
		}
		c.queued = nil
		return replies, nil
	case "GET":
		v, ok := c.pool.data[key]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "SET":
		c.pool.data[key] = args[1].([]byte)
		return "OK", nil
	case "DEL":
		if _, ok := c.pool.data[key]; !ok {
			return int64(0), nil
		}
		delete(c.pool.data, key)
		return int64(1), nil
	}
	return nil, fmt.Errorf("unexpected command %s", cmd)
}

func (c *fakeConn) Send(cmd string, args ...interface{}) error {
	c.queued = append(c.queued, append([]interface{}{cmd}, args...))
	return nil
}

func (c *fakeConn) Flush() error                  { return nil }
func (c *fakeConn) Receive() (interface{}, error) { return nil, nil }

func TestStateRepository(t *testing.T) {
	ctx := context.Background()
	pool := &fakePool{data: map[string][]byte{}}
	repo := NewStateRepository(pool)

	if _, err := repo.Load(ctx, "k"); !errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("Load missing: got %v, want ErrNoRecord", err)
	}

	if err := repo.Save(ctx, "k", []byte(`[1]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx, "k")
	if err != nil || string(got) != "[1]" {
		t.Fatalf("Load = %q, %v", got, err)
	}

	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Load(ctx, "k"); !errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("Load after delete: got %v", err)
	}

	if pool.closed != 5 {
		t.Errorf("connections closed = %d, want 5", pool.closed)
	}
}

func TestStateRepositoryPoolError(t *testing.T) {
	repo := NewStateRepository(&fakePool{err: errors.New("dial refused")})
	if _, err := repo.Load(context.Background(), "k"); err == nil || errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestStateRepositorySaveMany(t *testing.T) {
	ctx := context.Background()
	pool := &fakePool{data: map[string][]byte{}}
	repo := NewStateRepository(pool)

	err := repo.SaveMany(ctx, map[string][]byte{"a": []byte(`[1]`), "b": []byte(`[]`)})
	if err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	if string(pool.data["a"]) != "[1]" || string(pool.data["b"]) != "[]" {
		t.Errorf("data = %q", pool.data)
	}

	pool.execErr = errors.New("EXECABORT")
	err = repo.SaveMany(ctx, map[string][]byte{"a": []byte(`[2]`), "b": []byte(`[3]`)})
	if err == nil {
		t.Fatal("expected EXEC error")
	}
	if string(pool.data["a"]) != "[1]" || string(pool.data["b"]) != "[]" {
		t.Errorf("aborted transaction changed data: %q", pool.data)
	}
}
