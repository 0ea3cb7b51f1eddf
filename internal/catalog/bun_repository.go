package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-localpages/catalog"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunServiceRepository struct {
	db    *bun.DB
	repo  repository.Repository[*catalog.Service]
	tiers repository.Repository[*catalog.ServiceTier]
}

func NewBunServiceRepository(db *bun.DB) *BunServiceRepository {
	return NewBunServiceRepositoryWithCache(db, nil, nil)
}

// NewBunServiceRepositoryWithCache constructs a ServiceRepository backed by bun with optional caching.
func NewBunServiceRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunServiceRepository {
	base := NewServiceRepository(db)
	tierBase := NewServiceTierRepository(db)
	return &BunServiceRepository{
		db:    db,
		repo:  wrapWithCache(base, cacheService, keySerializer),
		tiers: wrapWithCache(tierBase, cacheService, keySerializer),
	}
}

func (r *BunServiceRepository) Create(ctx context.Context, record *catalog.Service) (*catalog.Service, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapWriteError(err, "service", record.Slug)
	}
	if len(record.Tiers) > 0 {
		if err := r.replaceTiers(ctx, created.ID, record.Tiers); err != nil {
			return nil, err
		}
		created.Tiers = record.Tiers
	}
	return created, nil
}

func (r *BunServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "service", id.String())
	}
	return r.attachTiers(ctx, result)
}

func (r *BunServiceRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "service", slug)
	}
	return r.attachTiers(ctx, result)
}

func (r *BunServiceRepository) List(ctx context.Context) ([]*catalog.Service, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunServiceRepository) ListActive(ctx context.Context) ([]*catalog.Service, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_active = ?", true)
		}),
	)
	return records, err
}

func (r *BunServiceRepository) Update(ctx context.Context, record *catalog.Service) (*catalog.Service, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"title",
			"description",
			"short_description",
			"category",
			"price",
			"is_active",
			"metadata",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapWriteError(err, "service", record.Slug)
	}
	if record.Tiers != nil {
		if err := r.replaceTiers(ctx, record.ID, record.Tiers); err != nil {
			return nil, err
		}
		updated.Tiers = record.Tiers
	}
	return updated, nil
}

func (r *BunServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return fmt.Errorf("service repository: database not configured")
	}

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*catalog.ServiceTier)(nil)).
			Where("?TableAlias.service_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete service tiers: %w", err)
		}

		result, err := tx.NewDelete().
			Model((*catalog.Service)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete service: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("service delete rows affected: %w", err)
		}
		if affected == 0 {
			return &NotFoundError{Resource: "service", Key: id.String()}
		}
		return nil
	})
}

func (r *BunServiceRepository) replaceTiers(ctx context.Context, serviceID uuid.UUID, tiers []*catalog.ServiceTier) error {
	if r.db == nil {
		return fmt.Errorf("service repository: database not configured")
	}

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*catalog.ServiceTier)(nil)).
			Where("?TableAlias.service_id = ?", serviceID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete service tiers: %w", err)
		}

		if len(tiers) == 0 {
			return nil
		}

		now := time.Now().UTC()
		toInsert := make([]*catalog.ServiceTier, 0, len(tiers))
		for _, tier := range tiers {
			if tier == nil {
				continue
			}
			cloned := *tier
			cloned.ServiceID = serviceID
			if cloned.ID == uuid.Nil {
				cloned.ID = uuid.New()
			}
			if cloned.CreatedAt.IsZero() {
				cloned.CreatedAt = now
			}
			if cloned.UpdatedAt.IsZero() {
				cloned.UpdatedAt = now
			}
			toInsert = append(toInsert, &cloned)
		}

		if len(toInsert) == 0 {
			return nil
		}

		if _, err := tx.NewInsert().Model(&toInsert).Exec(ctx); err != nil {
			return fmt.Errorf("insert service tiers: %w", err)
		}
		return nil
	})
}

func (r *BunServiceRepository) attachTiers(ctx context.Context, record *catalog.Service) (*catalog.Service, error) {
	if record == nil {
		return nil, nil
	}
	tiers, _, err := r.tiers.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.service_id = ?", record.ID)
		}),
	)
	if err != nil {
		return nil, err
	}
	record.Tiers = tiers
	return record, nil
}

type BunCityRepository struct {
	db   *bun.DB
	repo repository.Repository[*catalog.City]
}

func NewBunCityRepository(db *bun.DB) *BunCityRepository {
	return NewBunCityRepositoryWithCache(db, nil, nil)
}

// NewBunCityRepositoryWithCache constructs a CityRepository backed by bun with optional caching.
func NewBunCityRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunCityRepository {
	base := NewCityRepository(db)
	return &BunCityRepository{
		db:   db,
		repo: wrapWithCache(base, cacheService, keySerializer),
	}
}

func (r *BunCityRepository) Create(ctx context.Context, record *catalog.City) (*catalog.City, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapWriteError(err, "city", record.Slug)
	}
	return created, nil
}

func (r *BunCityRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.City, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "city", id.String())
	}
	return result, nil
}

func (r *BunCityRepository) GetBySlug(ctx context.Context, slug string) (*catalog.City, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "city", slug)
	}
	return result, nil
}

func (r *BunCityRepository) List(ctx context.Context) ([]*catalog.City, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunCityRepository) ListActive(ctx context.Context) ([]*catalog.City, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_active = ?", true)
		}),
	)
	return records, err
}

func (r *BunCityRepository) Update(ctx context.Context, record *catalog.City) (*catalog.City, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"name",
			"state",
			"description",
			"landmarks",
			"local_keywords",
			"is_active",
			"pages_generated",
			"generated_at",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapWriteError(err, "city", record.Slug)
	}
	return updated, nil
}

func (r *BunCityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return fmt.Errorf("city repository: database not configured")
	}

	result, err := r.db.NewDelete().
		Model((*catalog.City)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete city: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("city delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Resource: "city", Key: id.String()}
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func mapWriteError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if IsDuplicateKey(err) {
		return &DuplicateKeyError{Resource: resource, Key: key}
	}
	return mapRepositoryError(err, resource, key)
}

// IsDuplicateKey reports whether the error is a unique-index violation from
// the underlying driver. Covers sqlite and postgres phrasings.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "constraint failed: UNIQUE")
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
