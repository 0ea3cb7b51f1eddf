package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service represents a sellable offering administered through the catalog.
type Service struct {
	bun.BaseModel `bun:"table:services,alias:s"`

	ID               uuid.UUID      `bun:",pk,type:uuid"        json:"id"`
	Title            string         `bun:"title,notnull"        json:"title"`
	Slug             string         `bun:"slug,notnull,unique"  json:"slug"`
	Description      string         `bun:"description"          json:"description"`
	ShortDescription *string        `bun:"short_description"    json:"short_description,omitempty"`
	Category         *string        `bun:"category"             json:"category,omitempty"`
	Price            *float64       `bun:"price"                json:"price,omitempty"`
	IsActive         bool           `bun:"is_active,notnull,default:true" json:"is_active"`
	Metadata         map[string]any `bun:"metadata,type:jsonb"  json:"metadata,omitempty"`
	CreatedAt        time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Tiers []*ServiceTier `bun:"rel:has-many,join:id=service_id" json:"tiers,omitempty"`
}

// ServiceTier describes one pricing tier (basic/standard/premium) for a service.
type ServiceTier struct {
	bun.BaseModel `bun:"table:service_tiers,alias:st"`

	ID           uuid.UUID `bun:",pk,type:uuid"             json:"id"`
	ServiceID    uuid.UUID `bun:"service_id,notnull,type:uuid" json:"service_id"`
	Name         string    `bun:"name,notnull"              json:"name"`
	PriceINR     float64   `bun:"price_inr,notnull"         json:"price_inr"`
	PriceUSD     float64   `bun:"price_usd,notnull"         json:"price_usd"`
	Features     []string  `bun:"features,type:jsonb"       json:"features,omitempty"`
	DeliveryDays int       `bun:"delivery_days,notnull,default:0" json:"delivery_days"`
	Revisions    int       `bun:"revisions,notnull,default:0"     json:"revisions"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// City is a locality targeted by generated local-SEO landing pages.
//
// PagesGenerated and GeneratedAt are bookkeeping fields owned by the page
// generator; administrators only edit the descriptive fields.
type City struct {
	bun.BaseModel `bun:"table:cities,alias:ci"`

	ID             uuid.UUID  `bun:",pk,type:uuid"         json:"id"`
	Name           string     `bun:"name,notnull"          json:"name"`
	Slug           string     `bun:"slug,notnull,unique"   json:"slug"`
	State          string     `bun:"state,notnull"         json:"state"`
	Description    string     `bun:"description"           json:"description"`
	Landmarks      []string   `bun:"landmarks,type:jsonb"  json:"landmarks,omitempty"`
	LocalKeywords  []string   `bun:"local_keywords,type:jsonb" json:"local_keywords,omitempty"`
	IsActive       bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	PagesGenerated bool       `bun:"pages_generated,notnull,default:false" json:"pages_generated"`
	GeneratedAt    *time.Time `bun:"generated_at,nullzero" json:"generated_at,omitempty"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
