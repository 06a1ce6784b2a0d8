package configstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a Store backed by the admin_config table.
// The single-row-per-key upsert gives atomic last-write-wins semantics
// without explicit locking.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a PostgreSQL-backed store.
// The admin_config table is created by the embedded migrations (see db).
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Get implements Store.
func (p *Postgres) Get(ctx context.Context, key Key) (string, bool, error) {
	const query = `SELECT value FROM admin_config WHERE namespace = $1 AND key = $2`

	var value string
	err := p.pool.QueryRow(ctx, query, Namespace, string(key)).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", key, err)
	}
	return value, true, nil
}

// Set implements Store.
func (p *Postgres) Set(ctx context.Context, key Key, value string) error {
	const query = `INSERT INTO admin_config (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := p.pool.Exec(ctx, query, Namespace, string(key), value); err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

// Close implements Store.
// The pool is owned by the application container, which closes it on
// shutdown; Close here is a no-op to avoid a double close.
func (p *Postgres) Close() error {
	return nil
}
