package catalog

import (
	"context"
	"sync"

	"github.com/goliatone/go-localpages/catalog"
	"github.com/google/uuid"
)

// MemoryServiceRepository is an in-memory implementation for scaffolding and tests.
type MemoryServiceRepository struct {
	mu        sync.RWMutex
	services  map[uuid.UUID]*catalog.Service
	slugIndex map[string]uuid.UUID
}

// NewMemoryServiceRepository creates an empty in-memory service repository.
func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{
		services:  make(map[uuid.UUID]*catalog.Service),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied service, enforcing the unique slug index.
func (m *MemoryServiceRepository) Create(_ context.Context, record *catalog.Service) (*catalog.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slugIndex[record.Slug]; ok {
		return nil, &DuplicateKeyError{Resource: "service", Key: record.Slug}
	}

	copied := cloneService(record)
	m.services[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneService(copied), nil
}

// GetByID retrieves a service by identifier.
func (m *MemoryServiceRepository) GetByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.services[id]
	if !ok {
		return nil, &NotFoundError{Resource: "service", Key: id.String()}
	}
	return cloneService(rec), nil
}

// GetBySlug retrieves a service by slug, returning NotFoundError when absent.
func (m *MemoryServiceRepository) GetBySlug(_ context.Context, slug string) (*catalog.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "service", Key: slug}
	}
	return cloneService(m.services[id]), nil
}

// List returns all services.
func (m *MemoryServiceRepository) List(_ context.Context) ([]*catalog.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*catalog.Service, 0, len(m.services))
	for _, rec := range m.services {
		out = append(out, cloneService(rec))
	}
	return out, nil
}

// ListActive returns services with IsActive set.
func (m *MemoryServiceRepository) ListActive(_ context.Context) ([]*catalog.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*catalog.Service, 0, len(m.services))
	for _, rec := range m.services {
		if rec.IsActive {
			out = append(out, cloneService(rec))
		}
	}
	return out, nil
}

// Update replaces the stored service.
func (m *MemoryServiceRepository) Update(_ context.Context, record *catalog.Service) (*catalog.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.services[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "service", Key: record.ID.String()}
	}

	copied := cloneService(record)
	delete(m.slugIndex, existing.Slug)
	m.services[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneService(copied), nil
}

// Delete removes a service.
func (m *MemoryServiceRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.services[id]
	if !ok {
		return &NotFoundError{Resource: "service", Key: id.String()}
	}
	delete(m.slugIndex, rec.Slug)
	delete(m.services, id)
	return nil
}

func cloneService(src *catalog.Service) *catalog.Service {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Tiers) > 0 {
		copied.Tiers = make([]*catalog.ServiceTier, len(src.Tiers))
		for i, tier := range src.Tiers {
			if tier == nil {
				continue
			}
			local := *tier
			local.Features = append([]string(nil), tier.Features...)
			copied.Tiers[i] = &local
		}
	}
	copied.Metadata = cloneMap(src.Metadata)
	return &copied
}

// MemoryCityRepository stores cities in-memory.
type MemoryCityRepository struct {
	mu        sync.RWMutex
	cities    map[uuid.UUID]*catalog.City
	slugIndex map[string]uuid.UUID
}

// NewMemoryCityRepository constructs the repository.
func NewMemoryCityRepository() *MemoryCityRepository {
	return &MemoryCityRepository{
		cities:    make(map[uuid.UUID]*catalog.City),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied city, enforcing the unique slug index.
func (m *MemoryCityRepository) Create(_ context.Context, record *catalog.City) (*catalog.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slugIndex[record.Slug]; ok {
		return nil, &DuplicateKeyError{Resource: "city", Key: record.Slug}
	}

	copied := cloneCity(record)
	m.cities[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneCity(copied), nil
}

// GetByID retrieves a city by identifier.
func (m *MemoryCityRepository) GetByID(_ context.Context, id uuid.UUID) (*catalog.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.cities[id]
	if !ok {
		return nil, &NotFoundError{Resource: "city", Key: id.String()}
	}
	return cloneCity(rec), nil
}

// GetBySlug retrieves a city by slug.
func (m *MemoryCityRepository) GetBySlug(_ context.Context, slug string) (*catalog.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "city", Key: slug}
	}
	return cloneCity(m.cities[id]), nil
}

// List returns all cities.
func (m *MemoryCityRepository) List(_ context.Context) ([]*catalog.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*catalog.City, 0, len(m.cities))
	for _, rec := range m.cities {
		out = append(out, cloneCity(rec))
	}
	return out, nil
}

// ListActive returns cities with IsActive set.
func (m *MemoryCityRepository) ListActive(_ context.Context) ([]*catalog.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*catalog.City, 0, len(m.cities))
	for _, rec := range m.cities {
		if rec.IsActive {
			out = append(out, cloneCity(rec))
		}
	}
	return out, nil
}

// Update replaces the stored city.
func (m *MemoryCityRepository) Update(_ context.Context, record *catalog.City) (*catalog.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.cities[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "city", Key: record.ID.String()}
	}

	copied := cloneCity(record)
	delete(m.slugIndex, existing.Slug)
	m.cities[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneCity(copied), nil
}

// Delete removes a city.
func (m *MemoryCityRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.cities[id]
	if !ok {
		return &NotFoundError{Resource: "city", Key: id.String()}
	}
	delete(m.slugIndex, rec.Slug)
	delete(m.cities, id)
	return nil
}

func cloneCity(src *catalog.City) *catalog.City {
	if src == nil {
		return nil
	}

	copied := *src
	copied.Landmarks = append([]string(nil), src.Landmarks...)
	copied.LocalKeywords = append([]string(nil), src.LocalKeywords...)
	if src.GeneratedAt != nil {
		at := *src.GeneratedAt
		copied.GeneratedAt = &at
	}
	return &copied
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
