package pages

import (
	"context"
	"errors"
	"time"

	rootcatalog "github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/catalog"
	"github.com/goliatone/go-localpages/internal/identity"
	"github.com/goliatone/go-localpages/internal/logging"
	"github.com/goliatone/go-localpages/internal/seo"
	"github.com/goliatone/go-localpages/pages"
	"github.com/goliatone/go-localpages/pkg/interfaces"
	"github.com/google/uuid"
)

// ContentEngine produces the templated page content for one pair.
type ContentEngine interface {
	Generate(service *rootcatalog.Service, city *rootcatalog.City) (*seo.PageContent, error)
}

// PageRef identifies one page touched by a generation run.
type PageRef struct {
	PageID      uuid.UUID `json:"page_id,omitempty"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceSlug string    `json:"service_slug"`
	Slug        string    `json:"slug,omitempty"`
}

// PageFailure reports one per-service failure inside a generation run.
type PageFailure struct {
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceSlug string    `json:"service_slug"`
	Message     string    `json:"message"`
}

// Summary aggregates the outcome of one generation or regeneration run.
// Per-service failures land in Errored and never abort the batch.
type Summary struct {
	CityID    uuid.UUID     `json:"city_id"`
	CitySlug  string        `json:"city_slug"`
	Mode      string        `json:"mode"`
	Generated []PageRef     `json:"generated"`
	Skipped   []PageRef     `json:"skipped"`
	Errored   []PageFailure `json:"errors"`
}

// Counts returns the generated/skipped/errored totals.
func (s *Summary) Counts() (generated, skipped, errored int) {
	return len(s.Generated), len(s.Skipped), len(s.Errored)
}

// GeneratorOption configures the generator.
type GeneratorOption func(*Generator)

// WithGeneratorClock overrides the clock used for bookkeeping timestamps.
func WithGeneratorClock(clock func() time.Time) GeneratorOption {
	return func(g *Generator) {
		if clock != nil {
			g.now = clock
		}
	}
}

// WithGeneratorLogger injects the generator's logger.
func WithGeneratorLogger(logger interfaces.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator materializes service pages for a city by crossing every active
// service with the city through the content engine. The per-service loop is
// sequential so outcome buckets and the final city timestamp stay consistent.
type Generator struct {
	services catalog.ServiceRepository
	cities   catalog.CityRepository
	pages    PageRepository
	engine   ContentEngine
	now      func() time.Time
	logger   interfaces.Logger
}

// NewGenerator constructs a page generator.
func NewGenerator(services catalog.ServiceRepository, cities catalog.CityRepository, repo PageRepository, engine ContentEngine, opts ...GeneratorOption) *Generator {
	g := &Generator{
		services: services,
		cities:   cities,
		pages:    repo,
		engine:   engine,
		now:      time.Now,
		logger:   logging.NoOp(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate creates pages for every active service that does not already have
// one for the city. Existing pages are never overwritten; they are reported
// in the skipped bucket, including pages an administrator has hand-edited.
func (g *Generator) Generate(ctx context.Context, cityID uuid.UUID) (*Summary, error) {
	city, services, err := g.load(ctx, cityID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{CityID: city.ID, CitySlug: city.Slug, Mode: "generate"}

	for _, service := range services {
		existing, err := g.pages.GetByPair(ctx, service.ID, city.ID)
		if err == nil {
			summary.Skipped = append(summary.Skipped, pageRef(existing, service))
			continue
		}
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			summary.Errored = append(summary.Errored, pageFailure(service, err))
			continue
		}

		created, err := g.createPage(ctx, service, city)
		if err != nil {
			// A racing generate call created the pair first; that is a skip,
			// not a failure.
			var dup *catalog.DuplicateKeyError
			if errors.As(err, &dup) {
				summary.Skipped = append(summary.Skipped, PageRef{ServiceID: service.ID, ServiceSlug: service.Slug})
				continue
			}
			summary.Errored = append(summary.Errored, pageFailure(service, err))
			continue
		}
		summary.Generated = append(summary.Generated, pageRef(created, service))
	}

	if err := g.markCityGenerated(ctx, city); err != nil {
		return nil, err
	}

	g.logSummary(summary)
	return summary, nil
}

// Regenerate rewrites the page for every active service, recreating missing
// ones and overwriting existing ones. Manual edits are discarded and
// IsGenerated is forced back on; callers are expected to warn administrators
// before invoking this.
func (g *Generator) Regenerate(ctx context.Context, cityID uuid.UUID) (*Summary, error) {
	city, services, err := g.load(ctx, cityID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{CityID: city.ID, CitySlug: city.Slug, Mode: "regenerate"}

	for _, service := range services {
		page, err := g.writePage(ctx, service, city)
		if err != nil {
			summary.Errored = append(summary.Errored, pageFailure(service, err))
			continue
		}
		summary.Generated = append(summary.Generated, pageRef(page, service))
	}

	if err := g.markCityGenerated(ctx, city); err != nil {
		return nil, err
	}

	g.logSummary(summary)
	return summary, nil
}

func (g *Generator) load(ctx context.Context, cityID uuid.UUID) (*rootcatalog.City, []*rootcatalog.Service, error) {
	if cityID == uuid.Nil {
		return nil, nil, rootcatalog.ErrCityIDRequired
	}

	city, err := g.cities.GetByID(ctx, cityID)
	if err != nil {
		return nil, nil, err
	}

	services, err := g.services.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(services) == 0 {
		return nil, nil, pages.ErrNoActiveServices
	}

	return city, services, nil
}

func (g *Generator) createPage(ctx context.Context, service *rootcatalog.Service, city *rootcatalog.City) (*pages.ServicePage, error) {
	content, err := g.engine.Generate(service, city)
	if err != nil {
		return nil, err
	}
	return g.pages.Create(ctx, g.buildRecord(content, service, city))
}

// writePage is the regenerate path: overwrite when the pair exists, create
// otherwise. Losing a create race degrades into an overwrite of the winner.
func (g *Generator) writePage(ctx context.Context, service *rootcatalog.Service, city *rootcatalog.City) (*pages.ServicePage, error) {
	content, err := g.engine.Generate(service, city)
	if err != nil {
		return nil, err
	}

	existing, err := g.pages.GetByPair(ctx, service.ID, city.ID)
	if err == nil {
		return g.pages.Update(ctx, g.overwrite(existing, content))
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	created, err := g.pages.Create(ctx, g.buildRecord(content, service, city))
	if err == nil {
		return created, nil
	}
	var dup *catalog.DuplicateKeyError
	if !errors.As(err, &dup) {
		return nil, err
	}

	winner, err := g.pages.GetByPair(ctx, service.ID, city.ID)
	if err != nil {
		return nil, err
	}
	return g.pages.Update(ctx, g.overwrite(winner, content))
}

func (g *Generator) buildRecord(content *seo.PageContent, service *rootcatalog.Service, city *rootcatalog.City) *pages.ServicePage {
	now := g.now()
	return &pages.ServicePage{
		ID:              identity.ServicePageUUID(city.ID, service.ID),
		ServiceID:       service.ID,
		CityID:          city.ID,
		Title:           content.Title,
		MetaTitle:       content.MetaTitle,
		MetaDescription: content.MetaDescription,
		Keywords:        content.Keywords,
		Content:         content.Content,
		Slug:            content.Slug,
		CanonicalURL:    content.CanonicalURL,
		Breadcrumbs:     content.Breadcrumbs,
		StructuredData:  content.StructuredData,
		FAQSchema:       content.FAQSchema,
		IsGenerated:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (g *Generator) overwrite(record *pages.ServicePage, content *seo.PageContent) *pages.ServicePage {
	record.Title = content.Title
	record.MetaTitle = content.MetaTitle
	record.MetaDescription = content.MetaDescription
	record.Keywords = content.Keywords
	record.Content = content.Content
	record.CanonicalURL = content.CanonicalURL
	record.Breadcrumbs = content.Breadcrumbs
	record.StructuredData = content.StructuredData
	record.FAQSchema = content.FAQSchema
	record.IsGenerated = true
	record.UpdatedAt = g.now()
	return record
}

// markCityGenerated stamps the city after the batch completes, regardless of
// per-item failures.
func (g *Generator) markCityGenerated(ctx context.Context, city *rootcatalog.City) error {
	now := g.now()
	city.PagesGenerated = true
	city.GeneratedAt = &now
	city.UpdatedAt = now
	_, err := g.cities.Update(ctx, city)
	return err
}

func (g *Generator) logSummary(summary *Summary) {
	generated, skipped, errored := summary.Counts()
	g.logger.Info("pages.generation_completed",
		"city", summary.CitySlug,
		"mode", summary.Mode,
		"generated", generated,
		"skipped", skipped,
		"errored", errored,
	)
}

func pageRef(page *pages.ServicePage, service *rootcatalog.Service) PageRef {
	return PageRef{
		PageID:      page.ID,
		ServiceID:   service.ID,
		ServiceSlug: service.Slug,
		Slug:        page.Slug,
	}
}

func pageFailure(service *rootcatalog.Service, err error) PageFailure {
	return PageFailure{
		ServiceID:   service.ID,
		ServiceSlug: service.Slug,
		Message:     err.Error(),
	}
}
