package pages

import (
	"context"
	"fmt"

	"github.com/goliatone/go-localpages/pages"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageRepository persists generated service pages. Delete helpers return the
// number of removed rows so callers can report cascade effects.
type PageRepository interface {
	Create(ctx context.Context, record *pages.ServicePage) (*pages.ServicePage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*pages.ServicePage, error)
	GetBySlug(ctx context.Context, slug string) (*pages.ServicePage, error)
	GetByPair(ctx context.Context, serviceID, cityID uuid.UUID) (*pages.ServicePage, error)
	List(ctx context.Context, filter ListFilter) ([]*pages.ServicePage, error)
	Update(ctx context.Context, record *pages.ServicePage) (*pages.ServicePage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCity(ctx context.Context, cityID uuid.UUID) (int, error)
	DeleteByService(ctx context.Context, serviceID uuid.UUID) (int, error)
}

// ListFilter narrows page listings. Zero values mean "all".
type ListFilter struct {
	CityID    uuid.UUID
	ServiceID uuid.UUID
	// WithRelations joins the parent Service and City records for display.
	WithRelations bool
}

// NotFoundError reports a missing service page.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pages: service page %q not found", e.Key)
}

// NewServicePageRepository builds the raw bun-backed repository for service pages.
func NewServicePageRepository(db *bun.DB) repository.Repository[*pages.ServicePage] {
	handlers := repository.ModelHandlers[*pages.ServicePage]{
		NewRecord: func() *pages.ServicePage {
			return &pages.ServicePage{}
		},
		GetID: func(record *pages.ServicePage) uuid.UUID {
			if record == nil {
				return uuid.Nil
			}
			return record.ID
		},
		SetID: func(record *pages.ServicePage, id uuid.UUID) {
			if record != nil {
				record.ID = id
			}
		},
		GetIdentifier: func() string {
			return "slug"
		},
	}
	return repository.MustNewRepository[*pages.ServicePage](db, handlers)
}

func pairKey(serviceID, cityID uuid.UUID) string {
	return serviceID.String() + ":" + cityID.String()
}
