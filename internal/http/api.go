package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-localpages/internal/catalog"
	"github.com/goliatone/go-localpages/internal/logging"
	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/sitemap"
	"github.com/goliatone/go-localpages/pkg/interfaces"
)

// AdminAPI registers the admin endpoints for services, cities, and generated
// pages, plus the public sitemap route.
type AdminAPI struct {
	basePath    string
	siteBaseURL string
	catalog     catalog.Service
	pages       intpages.Service
	generator   *intpages.Generator
	sitemap     *sitemap.Builder
	logger      interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithCatalogService wires the catalog service.
func WithCatalogService(service catalog.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.catalog = service
		}
	}
}

// WithPageService wires the page read/curation service.
func WithPageService(service intpages.Service) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.pages = service
		}
	}
}

// WithGenerator wires the page generation orchestrator.
func WithGenerator(generator *intpages.Generator) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.generator = generator
		}
	}
}

// WithSiteBaseURL sets the public site URL advertised in robots.txt.
func WithSiteBaseURL(baseURL string) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.siteBaseURL = strings.TrimSpace(baseURL)
		}
	}
}

// WithSitemap wires the sitemap builder.
func WithSitemap(builder *sitemap.Builder) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.sitemap = builder
		}
	}
}

// WithLogger injects the logger used by handlers.
func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register binds every route onto the mux.
func (api *AdminAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	api.registerCatalogRoutes(mux, api.basePath)
	api.registerPageRoutes(mux, api.basePath)
	api.registerSitemapRoutes(mux)
}
