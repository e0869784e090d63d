package store

import (
	"context"
	"slices"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{recs: map[string]Record{}}
}

func (m *MemoryRepo) Save(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.History = slices.Clone(r.History)
	m.recs[r.ID] = r
	return nil
}

func (m *MemoryRepo) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	r.History = slices.Clone(r.History)
	return r, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.recs))
	for _, r := range m.recs {
		r.History = slices.Clone(r.History)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
