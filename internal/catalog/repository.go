package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-localpages/catalog"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ServiceRepository abstracts storage operations for catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, record *catalog.Service) (*catalog.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.Service, error)
	List(ctx context.Context) ([]*catalog.Service, error)
	ListActive(ctx context.Context) ([]*catalog.Service, error)
	Update(ctx context.Context, record *catalog.Service) (*catalog.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CityRepository abstracts storage operations for cities.
type CityRepository interface {
	Create(ctx context.Context, record *catalog.City) (*catalog.City, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.City, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.City, error)
	List(ctx context.Context) ([]*catalog.City, error)
	ListActive(ctx context.Context) ([]*catalog.City, error)
	Update(ctx context.Context, record *catalog.City) (*catalog.City, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PageRemover is the slice of the page store the catalog needs to cascade
// deletes when a parent service or city is removed.
type PageRemover interface {
	DeleteByService(ctx context.Context, serviceID uuid.UUID) (int, error)
	DeleteByCity(ctx context.Context, cityID uuid.UUID) (int, error)
}

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// ErrDuplicateKey is the sentinel wrapped by DuplicateKeyError.
var ErrDuplicateKey = errors.New("catalog: duplicate key")

// DuplicateKeyError surfaces unique-index violations so callers can render a
// user-facing "already exists" message instead of a generic storage failure.
type DuplicateKeyError struct {
	Resource string
	Key      string
}

func (e *DuplicateKeyError) Error() string {
	if e == nil {
		return ErrDuplicateKey.Error()
	}
	if e.Key == "" {
		return fmt.Sprintf("%s already exists", e.Resource)
	}
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func NewServiceRepository(db *bun.DB) repository.Repository[*catalog.Service] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*catalog.Service]{
		NewRecord: func() *catalog.Service { return &catalog.Service{} },
		GetID: func(s *catalog.Service) uuid.UUID {
			return s.ID
		},
		SetID: func(s *catalog.Service, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(s *catalog.Service) string {
			return s.Slug
		},
	})
}

func NewServiceTierRepository(db *bun.DB) repository.Repository[*catalog.ServiceTier] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*catalog.ServiceTier]{
		NewRecord: func() *catalog.ServiceTier { return &catalog.ServiceTier{} },
		GetID: func(t *catalog.ServiceTier) uuid.UUID {
			return t.ID
		},
		SetID: func(t *catalog.ServiceTier, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(t *catalog.ServiceTier) string {
			if t == nil {
				return ""
			}
			return t.ID.String()
		},
	})
}

func NewCityRepository(db *bun.DB) repository.Repository[*catalog.City] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*catalog.City]{
		NewRecord: func() *catalog.City { return &catalog.City{} },
		GetID: func(c *catalog.City) uuid.UUID {
			return c.ID
		},
		SetID: func(c *catalog.City, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(c *catalog.City) string {
			return c.Slug
		},
	})
}
