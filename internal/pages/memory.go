package pages

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-localpages/internal/catalog"
	"github.com/goliatone/go-localpages/pages"
	"github.com/google/uuid"
)

// MemoryPageRepository is the in-memory PageRepository used by tests and
// embedded setups without a database.
type MemoryPageRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*pages.ServicePage
	slugIndex map[string]uuid.UUID
	pairIndex map[string]uuid.UUID
}

// NewMemoryPageRepository builds an empty in-memory page repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		records:   map[uuid.UUID]*pages.ServicePage{},
		slugIndex: map[string]uuid.UUID{},
		pairIndex: map[string]uuid.UUID{},
	}
}

func (r *MemoryPageRepository) Create(_ context.Context, record *pages.ServicePage) (*pages.ServicePage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.slugIndex[record.Slug]; exists {
		return nil, &catalog.DuplicateKeyError{Resource: "service page", Key: record.Slug}
	}
	pair := pairKey(record.ServiceID, record.CityID)
	if _, exists := r.pairIndex[pair]; exists {
		return nil, &catalog.DuplicateKeyError{Resource: "service page", Key: pair}
	}

	stored := clonePage(record)
	r.records[stored.ID] = stored
	r.slugIndex[stored.Slug] = stored.ID
	r.pairIndex[pair] = stored.ID
	return clonePage(stored), nil
}

func (r *MemoryPageRepository) GetByID(_ context.Context, id uuid.UUID) (*pages.ServicePage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return clonePage(record), nil
}

func (r *MemoryPageRepository) GetBySlug(_ context.Context, slug string) (*pages.ServicePage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Key: slug}
	}
	return clonePage(r.records[id]), nil
}

func (r *MemoryPageRepository) GetByPair(_ context.Context, serviceID, cityID uuid.UUID) (*pages.ServicePage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.pairIndex[pairKey(serviceID, cityID)]
	if !ok {
		return nil, &NotFoundError{Key: pairKey(serviceID, cityID)}
	}
	return clonePage(r.records[id]), nil
}

func (r *MemoryPageRepository) List(_ context.Context, filter ListFilter) ([]*pages.ServicePage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*pages.ServicePage, 0, len(r.records))
	for _, record := range r.records {
		if filter.CityID != uuid.Nil && record.CityID != filter.CityID {
			continue
		}
		if filter.ServiceID != uuid.Nil && record.ServiceID != filter.ServiceID {
			continue
		}
		out = append(out, clonePage(record))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func (r *MemoryPageRepository) Update(_ context.Context, record *pages.ServicePage) (*pages.ServicePage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}

	stored := clonePage(record)
	// Slug and pair identity are immutable once generated.
	stored.Slug = existing.Slug
	stored.ServiceID = existing.ServiceID
	stored.CityID = existing.CityID
	r.records[stored.ID] = stored
	return clonePage(stored), nil
}

func (r *MemoryPageRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return &NotFoundError{Key: id.String()}
	}
	r.remove(record)
	return nil
}

func (r *MemoryPageRepository) DeleteByCity(_ context.Context, cityID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, record := range r.records {
		if record.CityID == cityID {
			r.remove(record)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryPageRepository) DeleteByService(_ context.Context, serviceID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, record := range r.records {
		if record.ServiceID == serviceID {
			r.remove(record)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryPageRepository) remove(record *pages.ServicePage) {
	delete(r.records, record.ID)
	delete(r.slugIndex, record.Slug)
	delete(r.pairIndex, pairKey(record.ServiceID, record.CityID))
}

func clonePage(record *pages.ServicePage) *pages.ServicePage {
	if record == nil {
		return nil
	}
	cloned := *record
	cloned.Keywords = append([]string(nil), record.Keywords...)
	cloned.Breadcrumbs = append([]pages.Breadcrumb(nil), record.Breadcrumbs...)
	cloned.StructuredData = cloneMap(record.StructuredData)
	cloned.FAQSchema = cloneMap(record.FAQSchema)
	cloned.Service = nil
	cloned.City = nil
	return &cloned
}

func cloneMap(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}
