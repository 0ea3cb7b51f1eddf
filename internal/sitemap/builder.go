package sitemap

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-localpages/internal/catalog"
	"github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/seo"
)

// Entry is one sitemap URL record.
type Entry struct {
	URL          string    `json:"url"`
	LastModified time.Time `json:"last_modified"`
	ChangeFreq   string    `json:"change_freq"`
	Priority     string    `json:"priority"`
}

// Builder enumerates the public URL space: the site root, active city hubs,
// and every generated service page.
type Builder struct {
	cities catalog.CityRepository
	pages  pages.PageRepository
	urls   *seo.URLBuilder
	now    func() time.Time
}

// NewBuilder constructs a sitemap builder.
func NewBuilder(cities catalog.CityRepository, repo pages.PageRepository, urls *seo.URLBuilder) *Builder {
	return &Builder{
		cities: cities,
		pages:  repo,
		urls:   urls,
		now:    time.Now,
	}
}

// Entries collects every sitemap entry, deduplicated and sorted by URL.
func (b *Builder) Entries(ctx context.Context) ([]Entry, error) {
	fallback := b.now()

	home, err := b.urls.Home()
	if err != nil {
		return nil, fmt.Errorf("sitemap: build home url: %w", err)
	}

	entries := []Entry{{
		URL:          home,
		LastModified: fallback,
		ChangeFreq:   "weekly",
		Priority:     "1.0",
	}}
	seen := map[string]struct{}{home: {}}

	cities, err := b.cities.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap: list cities: %w", err)
	}
	for _, city := range cities {
		location, err := b.urls.CityURL(city.Slug)
		if err != nil {
			return nil, fmt.Errorf("sitemap: build city url: %w", err)
		}
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}
		entries = append(entries, Entry{
			URL:          location,
			LastModified: lastModified(city.UpdatedAt, fallback),
			ChangeFreq:   "weekly",
			Priority:     "0.8",
		})
	}

	records, err := b.pages.List(ctx, pages.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("sitemap: list pages: %w", err)
	}
	for _, record := range records {
		if _, ok := seen[record.CanonicalURL]; ok {
			continue
		}
		seen[record.CanonicalURL] = struct{}{}
		entries = append(entries, Entry{
			URL:          record.CanonicalURL,
			LastModified: lastModified(record.UpdatedAt, fallback),
			ChangeFreq:   "monthly",
			Priority:     "0.6",
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].URL < entries[j].URL
	})
	return entries, nil
}

// XML serializes the sitemap in urlset form.
func (b *Builder) XML(ctx context.Context) (string, error) {
	entries, err := b.Entries(ctx)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", entry.URL))
		if !entry.LastModified.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastModified.UTC().Format(time.RFC3339)))
		}
		if entry.ChangeFreq != "" {
			builder.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", entry.ChangeFreq))
		}
		if entry.Priority != "" {
			builder.WriteString(fmt.Sprintf("    <priority>%s</priority>\n", entry.Priority))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String(), nil
}

// Robots renders a robots.txt that advertises the sitemap.
func (b *Builder) Robots(baseURL string) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base != "" {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", base))
	}
	return builder.String()
}

func lastModified(value, fallback time.Time) time.Time {
	if value.IsZero() {
		return fallback
	}
	return value
}
