// Package storage persists settings, the high score and finished runs
package storage

import (
	"context"
	"sort"
	"sync"
)

// Store is a string key-value store
type Store interface {
	// Get returns the value for key, ok is false when the key was never set
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// RunLog keeps the history of finished runs
type RunLog interface {
	RecordRun(ctx context.Context, run RunRecord) error
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)
}

// MemoryStore keeps everything in process, used in tests and when the database cannot be opened
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	runs   []RunRecord
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// RecordRun appends a finished run
func (m *MemoryStore) RecordRun(ctx context.Context, run RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

// RecentRuns returns up to limit runs, newest first
func (m *MemoryStore) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	out := make([]RunRecord, len(m.runs))
	copy(out, m.runs)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close is a no-op, it lets MemoryStore stand in for a database
func (m *MemoryStore) Close() error {
	return nil
}
