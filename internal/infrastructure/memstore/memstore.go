package memstore

import (
	"context"
	"sync"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
)

var _ repository.SessionVault = (*Vault)(nil)

// Vault keeps the persisted session record in process memory. It is the
// default backend: sessions survive logins within one process but not a
// restart, which is fine for the demo and for tests.
type Vault struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewVault builds an empty in-memory vault.
func NewVault() *Vault {
	return &Vault{data: map[string]string{}}
}

// Get returns the value for key, or domain.ErrNotFound.
func (v *Vault) Get(_ context.Context, key string) (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return val, nil
}

// Set stores value under key.
func (v *Vault) Set(_ context.Context, key, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[key] = value
	return nil
}

// Del removes the given keys; missing keys are not an error.
func (v *Vault) Del(_ context.Context, keys ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, k := range keys {
		delete(v.data, k)
	}
	return nil
}
