package pages

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-localpages/internal/catalog"
	"github.com/goliatone/go-localpages/pages"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunPageRepository is the bun-backed PageRepository.
type BunPageRepository struct {
	db   *bun.DB
	repo repository.Repository[*pages.ServicePage]
}

// NewBunPageRepository constructs a PageRepository without caching.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return NewBunPageRepositoryWithCache(db, nil, nil)
}

// NewBunPageRepositoryWithCache constructs a PageRepository backed by bun with optional caching.
func NewBunPageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunPageRepository {
	base := NewServicePageRepository(db)
	return &BunPageRepository{
		db:   db,
		repo: wrapWithCache(base, cacheService, keySerializer),
	}
}

func (r *BunPageRepository) Create(ctx context.Context, record *pages.ServicePage) (*pages.ServicePage, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapPageWriteError(err, record.Slug)
	}
	return created, nil
}

func (r *BunPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*pages.ServicePage, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapPageReadError(err, id.String())
	}
	return result, nil
}

func (r *BunPageRepository) GetBySlug(ctx context.Context, slug string) (*pages.ServicePage, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapPageReadError(err, slug)
	}
	return result, nil
}

func (r *BunPageRepository) GetByPair(ctx context.Context, serviceID, cityID uuid.UUID) (*pages.ServicePage, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.service_id = ?", serviceID).
				Where("?TableAlias.city_id = ?", cityID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapPageReadError(err, pairKey(serviceID, cityID))
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: pairKey(serviceID, cityID)}
	}
	return records[0], nil
}

func (r *BunPageRepository) List(ctx context.Context, filter ListFilter) ([]*pages.ServicePage, error) {
	criteria := []repository.SelectCriteria{
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if filter.CityID != uuid.Nil {
				q = q.Where("?TableAlias.city_id = ?", filter.CityID)
			}
			if filter.ServiceID != uuid.Nil {
				q = q.Where("?TableAlias.service_id = ?", filter.ServiceID)
			}
			return q.Order("slug ASC")
		}),
	}
	if filter.WithRelations {
		criteria = append(criteria, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Service").Relation("City")
		}))
	}

	records, _, err := r.repo.List(ctx, criteria...)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BunPageRepository) Update(ctx context.Context, record *pages.ServicePage) (*pages.ServicePage, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"title",
			"meta_title",
			"meta_description",
			"keywords",
			"content",
			"canonical_url",
			"breadcrumbs",
			"structured_data",
			"faq_schema",
			"is_generated",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapPageWriteError(err, record.Slug)
	}
	return updated, nil
}

func (r *BunPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return fmt.Errorf("pages: database not configured")
	}

	res, err := r.db.NewDelete().
		Model((*pages.ServicePage)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete service page: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &NotFoundError{Key: id.String()}
	}
	return nil
}

func (r *BunPageRepository) DeleteByCity(ctx context.Context, cityID uuid.UUID) (int, error) {
	return r.deleteWhere(ctx, "city_id", cityID)
}

func (r *BunPageRepository) DeleteByService(ctx context.Context, serviceID uuid.UUID) (int, error) {
	return r.deleteWhere(ctx, "service_id", serviceID)
}

func (r *BunPageRepository) deleteWhere(ctx context.Context, column string, id uuid.UUID) (int, error) {
	if r.db == nil {
		return 0, fmt.Errorf("pages: database not configured")
	}

	res, err := r.db.NewDelete().
		Model((*pages.ServicePage)(nil)).
		Where("?TableAlias."+column+" = ?", id).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete service pages by %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(affected), nil
}

func mapPageReadError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return err
}

func mapPageWriteError(err error, key string) error {
	if err == nil {
		return nil
	}
	if catalog.IsDuplicateKey(err) {
		return &catalog.DuplicateKeyError{Resource: "service page", Key: key}
	}
	return err
}

func wrapWithCache(repo repository.Repository[*pages.ServicePage], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[*pages.ServicePage] {
	if cacheService == nil || keySerializer == nil {
		return repo
	}
	return repositorycache.New(repo, cacheService, keySerializer)
}
