package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/draft-prospects/internal/domain/prospect"
)

// ProspectRepository keeps rows in insertion order, duplicates included,
// matching the storage semantics of the SQL table.
type ProspectRepository struct {
	mu    sync.RWMutex
	items []prospect.Prospect
}

func NewProspectRepository(items []prospect.Prospect) *ProspectRepository {
	return &ProspectRepository{
		items: append([]prospect.Prospect(nil), items...),
	}
}

func (r *ProspectRepository) Insert(_ context.Context, item prospect.Prospect) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func (r *ProspectRepository) List(_ context.Context) ([]prospect.Prospect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prospect.Prospect, 0, len(r.items))
	out = append(out, r.items...)

	return out, nil
}

func (r *ProspectRepository) GetByID(_ context.Context, id string) (prospect.Prospect, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return prospect.Prospect{}, false, nil
}

func (r *ProspectRepository) Update(_ context.Context, u prospect.Update) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for idx, item := range r.items {
		if item.ID != u.ID {
			continue
		}
		r.items[idx] = u.Apply(item)
		affected++
	}
	return affected, nil
}

func (r *ProspectRepository) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	var affected int64
	for _, item := range r.items {
		if item.ID == id {
			affected++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return affected, nil
}

func (r *ProspectRepository) ReplaceAll(_ context.Context, items []prospect.Prospect) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]prospect.Prospect(nil), items...)
	return nil
}
