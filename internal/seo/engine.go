package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/logging"
	"github.com/goliatone/go-localpages/pages"
	"github.com/goliatone/go-localpages/pkg/interfaces"
)

const (
	metaTitleLimit       = 60
	metaDescriptionLimit = 160
)

// PageContent is the full templated output for one (service, city) pair.
type PageContent struct {
	Slug            string
	Title           string
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	Content         string
	CanonicalURL    string
	Breadcrumbs     []pages.Breadcrumb
	StructuredData  map[string]any
	FAQSchema       map[string]any
}

// TemplateError reports a generation failure for one pair. The engine fails
// closed: it never emits content with missing fields or residual placeholders.
type TemplateError struct {
	Field  string
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("seo: template error on %s: %s", e.Field, e.Reason)
}

// Engine combines a service and a city into a complete page record.
type Engine struct {
	urls      *URLBuilder
	templates []SectionTemplate
	siteName  string
	logger    interfaces.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithTemplates replaces the built-in section templates.
func WithTemplates(templates []SectionTemplate) EngineOption {
	return func(e *Engine) {
		if len(templates) > 0 {
			e.templates = templates
		}
	}
}

// WithSiteName sets the provider name embedded in structured data.
func WithSiteName(name string) EngineOption {
	return func(e *Engine) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			e.siteName = trimmed
		}
	}
}

// WithLogger injects the logger used by the engine.
func WithLogger(logger interfaces.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine builds a content engine resolving URLs through the given builder.
func NewEngine(urls *URLBuilder, opts ...EngineOption) *Engine {
	e := &Engine{
		urls:      urls,
		templates: DefaultTemplates(),
		siteName:  "Local Services",
		logger:    logging.NoOp(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Generate produces the templated page content for one pair. Inputs must be
// persisted records with their required fields populated.
func (e *Engine) Generate(service *catalog.Service, city *catalog.City) (*PageContent, error) {
	if err := validateInputs(service, city); err != nil {
		return nil, err
	}

	slug := city.Slug + "-" + service.Slug
	landmark := city.Name
	if len(city.Landmarks) > 0 {
		landmark = city.Landmarks[0]
	}

	replacer := strings.NewReplacer(
		"{serviceName}", service.Title,
		"{cityName}", city.Name,
		"{cityState}", city.State,
		"{landmark}", landmark,
	)

	sections := make([]string, 0, len(e.templates))
	for _, tpl := range e.templates {
		substituted := replacer.Replace(tpl.Body)
		if leftover := residualPlaceholder(substituted); leftover != "" {
			return nil, &TemplateError{
				Field:  "content",
				Reason: fmt.Sprintf("section %q left placeholder %s unsubstituted", tpl.Name, leftover),
			}
		}
		sections = append(sections, strings.TrimSpace(substituted))
	}
	content := strings.Join(sections, "\n\n")

	canonicalURL, err := e.urls.PageURL(slug)
	if err != nil {
		return nil, &TemplateError{Field: "canonicalUrl", Reason: err.Error()}
	}
	breadcrumbs, err := e.urls.Breadcrumbs(service, city, slug)
	if err != nil {
		return nil, &TemplateError{Field: "breadcrumbs", Reason: err.Error()}
	}

	result := &PageContent{
		Slug:            slug,
		Title:           fmt.Sprintf("%s in %s", service.Title, city.Name),
		MetaTitle:       metaTitle(service, city),
		MetaDescription: metaDescription(service, city),
		Keywords:        keywords(service, city),
		Content:         content,
		CanonicalURL:    canonicalURL,
		Breadcrumbs:     breadcrumbs,
		StructuredData:  serviceStructuredData(service, city, canonicalURL, e.siteName),
		FAQSchema:       faqSchema(content),
	}

	e.logger.Debug("seo.page_generated", "slug", slug)
	return result, nil
}

func validateInputs(service *catalog.Service, city *catalog.City) error {
	if service == nil {
		return &TemplateError{Field: "service", Reason: "service record is required"}
	}
	if city == nil {
		return &TemplateError{Field: "city", Reason: "city record is required"}
	}
	if strings.TrimSpace(service.Title) == "" {
		return &TemplateError{Field: "service.title", Reason: "title is required"}
	}
	if strings.TrimSpace(service.Slug) == "" {
		return &TemplateError{Field: "service.slug", Reason: "slug is required"}
	}
	if service.Price == nil && len(service.Tiers) == 0 {
		return &TemplateError{Field: "service.price", Reason: "price or tiers required"}
	}
	if strings.TrimSpace(city.Name) == "" {
		return &TemplateError{Field: "city.name", Reason: "name is required"}
	}
	if strings.TrimSpace(city.Slug) == "" {
		return &TemplateError{Field: "city.slug", Reason: "slug is required"}
	}
	if strings.TrimSpace(city.State) == "" {
		return &TemplateError{Field: "city.state", Reason: "state is required"}
	}
	return nil
}

// metaTitle tries phrasings longest first and keeps the first one within the
// 60 character guideline; the shortest phrasing wins regardless as a floor.
func metaTitle(service *catalog.Service, city *catalog.City) string {
	candidates := []string{
		fmt.Sprintf("%s in %s, %s | Affordable Packages", service.Title, city.Name, city.State),
		fmt.Sprintf("%s in %s | Local Experts", service.Title, city.Name),
		fmt.Sprintf("%s in %s", service.Title, city.Name),
	}
	for _, candidate := range candidates {
		if utf8.RuneCountInString(candidate) <= metaTitleLimit {
			return candidate
		}
	}
	return candidates[len(candidates)-1]
}

// metaDescription always mentions both the service title and the city name.
func metaDescription(service *catalog.Service, city *catalog.City) string {
	candidates := []string{
		fmt.Sprintf("Professional %s services in %s, %s. Affordable pricing, fast delivery and dedicated local support for %s businesses. Get a free quote today.",
			service.Title, city.Name, city.State, city.Name),
		fmt.Sprintf("Professional %s in %s. Affordable pricing and dedicated local support. Get a free quote today.",
			service.Title, city.Name),
		fmt.Sprintf("%s in %s. Free quote today.", service.Title, city.Name),
	}
	for _, candidate := range candidates {
		if utf8.RuneCountInString(candidate) <= metaDescriptionLimit {
			return candidate
		}
	}
	return candidates[len(candidates)-1]
}

func keywords(service *catalog.Service, city *catalog.City) []string {
	title := strings.ToLower(service.Title)
	name := strings.ToLower(city.Name)
	out := []string{
		title + " " + name,
		title + " in " + name,
		"best " + title + " " + name,
		title + " " + strings.ToLower(city.State),
	}
	out = append(out, city.LocalKeywords...)
	return out
}

// residualPlaceholder returns the first {token} remaining after substitution,
// or empty when the text is clean.
func residualPlaceholder(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(text[start:], '}')
	if end < 0 {
		return text[start:min(start+20, len(text))]
	}
	return text[start : start+end+1]
}
