package localpages

import (
	"net/http"

	intcatalog "github.com/goliatone/go-localpages/internal/catalog"
	"github.com/goliatone/go-localpages/internal/di"
	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/render"
	"github.com/goliatone/go-localpages/internal/seo"
	"github.com/goliatone/go-localpages/internal/sitemap"
)

// CatalogService exports the service/city management contract for consumers
// of the localpages package.
type CatalogService = intcatalog.Service

// PageService exports the generated page read and curation contract.
type PageService = intpages.Service

// Generator exports the page generation orchestrator.
type Generator = intpages.Generator

// GenerationSummary exports the outcome of a generation run.
type GenerationSummary = intpages.Summary

// SitemapBuilder exports the sitemap builder contract.
type SitemapBuilder = sitemap.Builder

// ContentEngine exports the content engine used to render page records.
type ContentEngine = seo.Engine

// ContentBlock exports one typed chunk of parsed page content.
type ContentBlock = render.Block

// HTMLRenderer exports the block-to-HTML renderer.
type HTMLRenderer = render.HTMLRenderer

// ParseBlocks splits page content into typed blocks. The parser is permissive
// and never fails; unrecognized lines come back as text blocks.
func ParseBlocks(content string) []ContentBlock {
	return render.Parse(content)
}

// CreateServiceRequest exports the catalog create payload for services.
type CreateServiceRequest = intcatalog.CreateServiceRequest

// UpdateServiceRequest exports the catalog update payload for services.
type UpdateServiceRequest = intcatalog.UpdateServiceRequest

// CreateCityRequest exports the catalog create payload for cities.
type CreateCityRequest = intcatalog.CreateCityRequest

// UpdateCityRequest exports the catalog update payload for cities.
type UpdateCityRequest = intcatalog.UpdateCityRequest

// UpdatePageMetaRequest exports the manual page curation payload.
type UpdatePageMetaRequest = intpages.UpdateMetaRequest

// ListPageFilter exports the page list filter.
type ListPageFilter = intpages.ListFilter

// ListCatalogOptions exports the service/city listing options.
type ListCatalogOptions = intcatalog.ListOptions

// TierInput exports the pricing tier payload used when creating services.
type TierInput = intcatalog.TierInput

// Module represents the top level local pages runtime facade.
type Module struct {
	container *di.Container
	renderer  *render.HTMLRenderer
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{
		container: di.NewContainer(cfg, opts...),
		renderer:  render.NewHTMLRenderer(),
	}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CatalogService()
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PageService()
}

// Generator returns the page generation orchestrator.
func (m *Module) Generator() *Generator {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Generator()
}

// Sitemap returns the sitemap builder, nil when the feature is disabled.
func (m *Module) Sitemap() *SitemapBuilder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Sitemap()
}

// Engine returns the content engine that renders page records.
func (m *Module) Engine() *ContentEngine {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ContentEngine()
}

// Renderer returns the HTML renderer for stored page content.
func (m *Module) Renderer() *HTMLRenderer {
	if m == nil {
		return nil
	}
	return m.renderer
}

// RegisterRoutes binds the admin API and public sitemap routes onto the mux.
func (m *Module) RegisterRoutes(mux *http.ServeMux) {
	if m == nil || m.container == nil || mux == nil {
		return
	}
	m.container.AdminAPI().Register(mux)
}
