package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get for absent keys, regardless of
// backend.
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable backend contract: plain string get/set/del with
// last-write-wins semantics and no transactions. The engine persists whole
// collections under the fixed keys in keys.go.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, keys ...string) error
	Close() error
}
