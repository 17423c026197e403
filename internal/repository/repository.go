package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates and pings a PostgreSQL connection pool.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var (
	sharedOnce sync.Once
	sharedPool *pgxpool.Pool
	sharedErr  error
)

// SharedPool returns the process-wide pool, connecting on first use. Racing
// callers share a single connection attempt, and a failed attempt is
// remembered rather than retried. The pool is never torn down mid-process.
func SharedPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	sharedOnce.Do(func() {
		sharedPool, sharedErr = NewPool(ctx, connString)
	})
	return sharedPool, sharedErr
}

// checkID rejects ids the store cannot address before they reach SQL.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
