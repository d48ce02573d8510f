// Package storage provides abstractions for persistent snapshot storage.
package storage

import "context"

// Snapshot keys for the four persisted collections.
const (
	KeyMembers  = "members"
	KeyPayments = "payments"
	KeySchedule = "schedule"
	KeySettings = "settings"
)

// Store defines the interface for snapshot storage operations. Each key holds
// one JSON-serialized collection. This abstraction allows swapping storage
// backends (SQLite, in-memory, etc.) without changing the service layer.
type Store interface {
	// Get retrieves the snapshot stored under key. The second return value
	// is false when no snapshot exists for the key; that is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set durably stores the snapshot under key, replacing any previous
	// value.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}
