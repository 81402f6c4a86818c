package save

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rahidmondal/life-at-dev-sub000/internal/metrics"
)

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	saves   map[uuid.UUID]Save
	metrics *metrics.Metrics
}

// NewMemoryStore creates an empty store. m may be nil.
func NewMemoryStore(m *metrics.Metrics) *MemoryStore {
	return &MemoryStore{
		saves:   make(map[uuid.UUID]Save),
		metrics: m,
	}
}

func (r *MemoryStore) Put(ctx context.Context, sv Save) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.saves[sv.ID]; ok {
		skip, err := CheckWrite(stored, sv)
		if err != nil {
			r.metrics.RecordSave("memory", "stale")
			return err
		}
		if skip {
			r.metrics.RecordSave("memory", "unchanged")
			return nil
		}
	}
	sv.State = sv.State.Clone()
	r.saves[sv.ID] = sv
	r.metrics.RecordSave("memory", "ok")
	return nil
}

func (r *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Save, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	sv, ok := r.saves[id]
	if !ok {
		return Save{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sv.State = sv.State.Clone()
	return sv, nil
}

// List returns all saves, most recently updated first.
func (r *MemoryStore) List(ctx context.Context) ([]Save, error) {
	_ = ctx

	r.mu.RLock()
	out := make([]Save, 0, len(r.saves))
	for _, sv := range r.saves {
		sv.State = sv.State.Clone()
		out = append(out, sv)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.saves[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.saves, id)
	return nil
}
