package badgerrepo

import (
	"context"
	"errors"
	"os"

	"github.com/SkillSwap/feed-service/internal/repository"
	"github.com/dgraph-io/badger/v4"
)

// Config holds options for the embedded BadgerDB backend.
type Config struct {
	// Path is the directory for the database files. Ignored in-memory.
	Path string

	// InMemory skips disk persistence entirely; used by tests.
	InMemory bool

	// SyncWrites forces an fsync per write for durability.
	SyncWrites bool
}

type badgerKV struct {
	db *badger.DB
}

// Open opens (or creates) a BadgerDB store and returns it behind the KV
// contract. Badger's own chatty logger is disabled; the service layer logs
// persistence failures itself.
func Open(cfg Config) (repository.KV, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &badgerKV{db: db}, nil
}

func (b *badgerKV) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value = string(raw)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", repository.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (b *badgerKV) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (b *badgerKV) Del(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *badgerKV) Close() error {
	return b.db.Close()
}
