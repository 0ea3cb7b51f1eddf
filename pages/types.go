package pages

import (
	"time"

	"github.com/goliatone/go-localpages/catalog"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Breadcrumb is one entry in a page's breadcrumb trail.
type Breadcrumb struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ServicePage is the materialized landing page for one (service, city) pair.
//
// IsGenerated starts true for machine-authored pages and flips to false the
// moment an administrator hand-edits the meta fields. A plain generate run
// never touches such pages; only an explicit regenerate overwrites them and
// forces the flag back to true.
type ServicePage struct {
	bun.BaseModel `bun:"table:service_pages,alias:sp"`

	ID              uuid.UUID      `bun:",pk,type:uuid"            json:"id"`
	ServiceID       uuid.UUID      `bun:"service_id,notnull,type:uuid" json:"service_id"`
	CityID          uuid.UUID      `bun:"city_id,notnull,type:uuid"    json:"city_id"`
	Title           string         `bun:"title,notnull"            json:"title"`
	MetaTitle       string         `bun:"meta_title,notnull"       json:"meta_title"`
	MetaDescription string         `bun:"meta_description,notnull" json:"meta_description"`
	Keywords        []string       `bun:"keywords,type:jsonb"      json:"keywords,omitempty"`
	Content         string         `bun:"content,notnull"          json:"content"`
	Slug            string         `bun:"slug,notnull,unique"      json:"slug"`
	CanonicalURL    string         `bun:"canonical_url,notnull"    json:"canonical_url"`
	Breadcrumbs     []Breadcrumb   `bun:"breadcrumbs,type:jsonb"   json:"breadcrumbs,omitempty"`
	StructuredData  map[string]any `bun:"structured_data,type:jsonb" json:"structured_data,omitempty"`
	FAQSchema       map[string]any `bun:"faq_schema,type:jsonb"    json:"faq_schema,omitempty"`
	IsGenerated     bool           `bun:"is_generated,notnull,default:true" json:"is_generated"`
	CreatedAt       time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Service *catalog.Service `bun:"rel:belongs-to,join:service_id=id" json:"service,omitempty"`
	City    *catalog.City    `bun:"rel:belongs-to,join:city_id=id"    json:"city,omitempty"`
}
