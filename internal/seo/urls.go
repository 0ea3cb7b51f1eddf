package seo

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/pages"
	urlkit "github.com/goliatone/go-urlkit"
)

const siteGroup = "site"

// URLBuilder resolves the public URLs embedded in generated pages through a
// go-urlkit route manager, so the URL scheme stays configurable in one place.
type URLBuilder struct {
	manager *urlkit.RouteManager
	group   *urlkit.Group
}

// NewURLBuilder wires the site route group against the configured base URL.
func NewURLBuilder(baseURL string) (*URLBuilder, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("seo: base url is required")
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: base,
				Paths: map[string]string{
					"home": "/",
					"city": "/cities/:slug",
					"page": "/:slug",
				},
			},
		},
	})

	// Group panics on unknown names; siteGroup is registered just above.
	return &URLBuilder{manager: manager, group: manager.Group(siteGroup)}, nil
}

// Home returns the site root URL.
func (b *URLBuilder) Home() (string, error) {
	return b.group.Builder("home").Build()
}

// CityURL returns the landing URL for a city hub page.
func (b *URLBuilder) CityURL(citySlug string) (string, error) {
	return b.group.Builder("city").WithParam("slug", citySlug).Build()
}

// PageURL returns the canonical URL for a generated service page.
func (b *URLBuilder) PageURL(pageSlug string) (string, error) {
	return b.group.Builder("page").WithParam("slug", pageSlug).Build()
}

// Breadcrumbs builds the Home > City > Service trail for a generated page.
func (b *URLBuilder) Breadcrumbs(service *catalog.Service, city *catalog.City, pageSlug string) ([]pages.Breadcrumb, error) {
	home, err := b.Home()
	if err != nil {
		return nil, fmt.Errorf("seo: build home url: %w", err)
	}
	cityURL, err := b.CityURL(city.Slug)
	if err != nil {
		return nil, fmt.Errorf("seo: build city url: %w", err)
	}
	pageURL, err := b.PageURL(pageSlug)
	if err != nil {
		return nil, fmt.Errorf("seo: build page url: %w", err)
	}

	return []pages.Breadcrumb{
		{Label: "Home", URL: home},
		{Label: city.Name, URL: cityURL},
		{Label: service.Title, URL: pageURL},
	}, nil
}
