package repository

import (
	"context"
	"sync"
)

type memoryKeyValueRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValueRepository keeps values for the lifetime of the process only.
func NewMemoryKeyValueRepository() KeyValueRepository {
	return &memoryKeyValueRepository{values: make(map[string]string)}
}

func (r *memoryKeyValueRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *memoryKeyValueRepository) Set(_ context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
