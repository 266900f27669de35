// Package store provides pluggable, opaque-blob persistence for
// simulation snapshots, per SPEC_FULL.md §4.G. The core never interprets
// what a backend does with the bytes it hands over — it only needs
// Put/Get/Delete by key. Three backends are provided: an in-memory default
// (store.MemoryStore), a GORM-backed SQL store (Postgres or SQLite), and a
// TTL-based Redis store.
package store

import "context"

// SnapshotStore persists opaque snapshot blobs by key. Implementations
// must not attempt to interpret the value bytes.
type SnapshotStore interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
}
