package repository

import "context"

// SessionVault is the port for the persisted session record: a tiny
// durable key/value store. Absent keys surface as domain.ErrNotFound.
// The session package owns which keys exist and always writes and
// deletes them together.
type SessionVault interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}
