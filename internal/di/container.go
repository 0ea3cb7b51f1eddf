package di

import (
	"io/fs"
	"os"
	"time"

	"github.com/goliatone/go-localpages/internal/catalog"
	apihttp "github.com/goliatone/go-localpages/internal/http"
	"github.com/goliatone/go-localpages/internal/logging"
	"github.com/goliatone/go-localpages/internal/logging/console"
	"github.com/goliatone/go-localpages/internal/logging/gologger"
	"github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/runtimeconfig"
	"github.com/goliatone/go-localpages/internal/seo"
	"github.com/goliatone/go-localpages/internal/sitemap"
	"github.com/goliatone/go-localpages/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies. Memory-backed repositories are the
// default; supplying a bun.DB switches every repository to SQL storage.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	templateFS     fs.FS

	serviceRepo catalog.ServiceRepository
	cityRepo    catalog.CityRepository
	pageRepo    pages.PageRepository

	urls   *seo.URLBuilder
	engine *seo.Engine

	catalogSvc catalog.Service
	pageSvc    pages.Service
	generator  *pages.Generator
	sitemapSvc *sitemap.Builder
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB switches the container to SQL-backed repositories.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache layer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTemplateFS overrides the filesystem the template pack is loaded from.
// The default reads Config.Templates.Dir from the host filesystem.
func WithTemplateFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.templateFS = fsys
	}
}

// WithCatalogService overrides the default catalog service binding.
func WithCatalogService(svc catalog.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithPageService overrides the default page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:      cfg,
		cacheTTL:    cacheTTL,
		serviceRepo: catalog.NewMemoryServiceRepository(),
		cityRepo:    catalog.NewMemoryCityRepository(),
		pageRepo:    pages.NewMemoryPageRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureContentEngine()

	if c.catalogSvc == nil {
		c.catalogSvc = catalog.NewService(
			c.serviceRepo,
			c.cityRepo,
			catalog.WithPageRemover(c.pageRepo),
			catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)),
		)
	}

	if c.pageSvc == nil {
		c.pageSvc = pages.NewService(
			c.pageRepo,
			pages.WithLogger(logging.PagesLogger(c.loggerProvider)),
		)
	}

	if c.generator == nil {
		c.generator = pages.NewGenerator(
			c.serviceRepo,
			c.cityRepo,
			c.pageRepo,
			c.engine,
			pages.WithGeneratorLogger(logging.GeneratorLogger(c.loggerProvider)),
		)
	}

	if c.Config.Features.Sitemap {
		c.sitemapSvc = sitemap.NewBuilder(c.cityRepo, c.pageRepo, c.urls)
	}

	return c
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}

	logCfg := c.Config.Logging
	switch logCfg.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
			return
		}
		fallthrough
	default:
		options := console.Options{}
		if level, ok := console.ParseLevel(logCfg.Level); ok {
			options.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(options)
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}

	c.serviceRepo = catalog.NewBunServiceRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.cityRepo = catalog.NewBunCityRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.pageRepo = pages.NewBunPageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureContentEngine() {
	urls, err := seo.NewURLBuilder(c.Config.Site.BaseURL)
	if err != nil {
		panic(err)
	}
	c.urls = urls

	engineOpts := []seo.EngineOption{
		seo.WithSiteName(c.Config.Site.SiteName),
		seo.WithLogger(logging.GeneratorLogger(c.loggerProvider)),
	}

	if c.Config.Features.Templates || c.Config.Templates.Enabled {
		fsys := c.templateFS
		dir := "."
		if fsys == nil {
			fsys = os.DirFS(c.Config.Templates.Dir)
		}
		templates, err := seo.LoadTemplates(fsys, dir)
		if err != nil {
			logging.GeneratorLogger(c.loggerProvider).Warn("template pack load failed, using built-ins",
				"dir", c.Config.Templates.Dir, "error", err)
		} else if len(templates) > 0 {
			engineOpts = append(engineOpts, seo.WithTemplates(templates))
		}
	}

	c.engine = seo.NewEngine(urls, engineOpts...)
}

// AdminAPI constructs the HTTP facade bound to the container services.
func (c *Container) AdminAPI() *apihttp.AdminAPI {
	opts := []apihttp.AdminOption{
		apihttp.WithCatalogService(c.catalogSvc),
		apihttp.WithPageService(c.pageSvc),
		apihttp.WithGenerator(c.generator),
		apihttp.WithSiteBaseURL(c.Config.Site.BaseURL),
		apihttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	}
	if c.sitemapSvc != nil {
		opts = append(opts, apihttp.WithSitemap(c.sitemapSvc))
	}
	return apihttp.NewAdminAPI(opts...)
}

// ServiceRepository exposes the configured service repository.
func (c *Container) ServiceRepository() catalog.ServiceRepository {
	return c.serviceRepo
}

// CityRepository exposes the configured city repository.
func (c *Container) CityRepository() catalog.CityRepository {
	return c.cityRepo
}

// PageRepository exposes the configured page repository.
func (c *Container) PageRepository() pages.PageRepository {
	return c.pageRepo
}

// CatalogService returns the configured catalog service.
func (c *Container) CatalogService() catalog.Service {
	return c.catalogSvc
}

// PageService returns the configured page service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// Generator returns the page generation orchestrator.
func (c *Container) Generator() *pages.Generator {
	return c.generator
}

// Sitemap returns the sitemap builder, nil when the feature is disabled.
func (c *Container) Sitemap() *sitemap.Builder {
	return c.sitemapSvc
}

// URLBuilder exposes the configured public URL builder.
func (c *Container) URLBuilder() *seo.URLBuilder {
	return c.urls
}

// ContentEngine exposes the configured content engine.
func (c *Container) ContentEngine() *seo.Engine {
	return c.engine
}

// LoggerProvider exposes the configured logger provider, which can be nil when
// the logging feature is disabled and no provider was injected.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}
