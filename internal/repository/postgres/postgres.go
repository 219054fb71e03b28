package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SkillSwap/feed-service/internal/config"
	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)

	return pgxpool.New(ctx, connString)
}

type pgKV struct {
	db *pgxpool.Pool
}

// New wraps a Postgres pool as a KV backend over a single two-column table.
// ON CONFLICT upsert gives the required last-write-wins behavior.
func New(ctx context.Context, db *pgxpool.Pool) (repository.KV, error) {
	if _, err := db.Exec(ctx, "CREATE TABLE IF NOT EXISTS kv(key TEXT PRIMARY KEY, value TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &pgKV{db: db}, nil
}

func (r *pgKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.QueryRow(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrKeyNotFound
		}
		return "", err
	}

	return value, nil
}

func (r *pgKV) Set(ctx context.Context, key string, value string) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO kv(key, value) VALUES($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key,
		value,
	)
	return err
}

func (r *pgKV) Del(ctx context.Context, keys ...string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM kv WHERE key = ANY($1)", keys)
	return err
}

func (r *pgKV) Close() error {
	r.db.Close()
	return nil
}
