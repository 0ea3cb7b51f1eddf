package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-localpages/pkg/interfaces"
)

const (
	rootModule      = "localpages"
	catalogModule   = "localpages.catalog"
	pagesModule     = "localpages.pages"
	generatorModule = "localpages.generator"
	sitemapModule   = "localpages.sitemap"
	httpModule      = "localpages.http"
)

const (
	fieldCitySlug    = "city_slug"
	fieldServiceSlug = "service_slug"
	fieldPageSlug    = "page_slug"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for catalog services.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// PagesLogger returns the logger namespace reserved for page services.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// GeneratorLogger returns the logger namespace reserved for the page generator.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// SitemapLogger returns the logger namespace reserved for the sitemap builder.
func SitemapLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sitemapModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithGenerationContext enriches the provided logger with common generation
// fields such as city slug, service slug, and page slug. Empty values are
// ignored.
func WithGenerationContext(logger interfaces.Logger, citySlug, serviceSlug, pageSlug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(citySlug); trimmed != "" {
		fields[fieldCitySlug] = trimmed
	}
	if trimmed := strings.TrimSpace(serviceSlug); trimmed != "" {
		fields[fieldServiceSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(pageSlug); trimmed != "" {
		fields[fieldPageSlug] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
