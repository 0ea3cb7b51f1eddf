package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/logging"
	"github.com/goliatone/go-localpages/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes catalog management use-cases for services and cities.
type Service interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*catalog.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error)
	ListServices(ctx context.Context, opts ListOptions) ([]*catalog.Service, error)
	UpdateService(ctx context.Context, req UpdateServiceRequest) (*catalog.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreateCity(ctx context.Context, req CreateCityRequest) (*catalog.City, error)
	GetCity(ctx context.Context, id uuid.UUID) (*catalog.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*catalog.City, error)
	ListCities(ctx context.Context, opts ListOptions) ([]*catalog.City, error)
	UpdateCity(ctx context.Context, req UpdateCityRequest) (*catalog.City, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
}

// ListOptions filters list reads.
type ListOptions struct {
	ActiveOnly bool
}

// TierInput carries one pricing tier in create/update payloads.
type TierInput struct {
	Name         string
	PriceINR     float64
	PriceUSD     float64
	Features     []string
	DeliveryDays int
	Revisions    int
}

// CreateServiceRequest captures the payload required to create a service.
// Slug is derived from Title when empty.
type CreateServiceRequest struct {
	Title            string
	Slug             string
	Description      string
	ShortDescription *string
	Category         *string
	Price            *float64
	IsActive         *bool
	Tiers            []TierInput
}

// UpdateServiceRequest mutates an existing service. Nil fields are left
// untouched; a non-nil Tiers slice replaces the full tier set. The slug is
// immutable once created so generated page URLs stay stable.
type UpdateServiceRequest struct {
	ID               uuid.UUID
	Title            *string
	Description      *string
	ShortDescription *string
	Category         *string
	Price            *float64
	IsActive         *bool
	Tiers            []TierInput
}

// CreateCityRequest captures the payload required to create a city.
type CreateCityRequest struct {
	Name          string
	Slug          string
	State         string
	Description   string
	Landmarks     []string
	LocalKeywords []string
	IsActive      *bool
}

// UpdateCityRequest mutates an existing city. Nil fields are left untouched.
type UpdateCityRequest struct {
	ID            uuid.UUID
	Name          *string
	State         *string
	Description   *string
	Landmarks     []string
	LocalKeywords []string
	IsActive      *bool
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new records.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger injects the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPageRemover wires the page store used to cascade deletes to generated pages.
func WithPageRemover(remover PageRemover) ServiceOption {
	return func(s *service) {
		s.pages = remover
	}
}

type service struct {
	services ServiceRepository
	cities   CityRepository
	pages    PageRemover
	now      func() time.Time
	id       IDGenerator
	logger   interfaces.Logger
}

// NewService constructs a catalog service with the required dependencies.
func NewService(services ServiceRepository, cities CityRepository, opts ...ServiceOption) Service {
	s := &service{
		services: services,
		cities:   cities,
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateService validates and persists a new catalog service.
func (s *service) CreateService(ctx context.Context, req CreateServiceRequest) (*catalog.Service, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, catalog.ErrServiceTitleRequired
	}

	slugValue, err := resolveSlug(req.Slug, title)
	if err != nil {
		return nil, catalog.ErrServiceSlugInvalid
	}

	now := s.now()
	record := &catalog.Service{
		ID:               s.id(),
		Title:            title,
		Slug:             slugValue,
		Description:      strings.TrimSpace(req.Description),
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Price:            req.Price,
		IsActive:         boolOrDefault(req.IsActive, true),
		CreatedAt:        now,
		UpdatedAt:        now,
		Tiers:            buildTiers(req.Tiers, s.id, now),
	}

	created, err := s.services.Create(ctx, record)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, catalog.ErrServiceSlugExists
		}
		return nil, err
	}

	s.logger.Info("catalog.service.created", "slug", created.Slug)
	return created, nil
}

// GetService fetches a service by identifier.
func (s *service) GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if id == uuid.Nil {
		return nil, catalog.ErrServiceIDRequired
	}
	return s.services.GetByID(ctx, id)
}

// GetServiceBySlug fetches a service by slug.
func (s *service) GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	return s.services.GetBySlug(ctx, strings.TrimSpace(slug))
}

// ListServices returns services, optionally only active ones.
func (s *service) ListServices(ctx context.Context, opts ListOptions) ([]*catalog.Service, error) {
	if opts.ActiveOnly {
		return s.services.ListActive(ctx)
	}
	return s.services.List(ctx)
}

// UpdateService applies the non-nil fields of the request.
func (s *service) UpdateService(ctx context.Context, req UpdateServiceRequest) (*catalog.Service, error) {
	if req.ID == uuid.Nil {
		return nil, catalog.ErrServiceIDRequired
	}

	record, err := s.services.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, catalog.ErrServiceTitleRequired
		}
		record.Title = title
	}
	if req.Description != nil {
		record.Description = strings.TrimSpace(*req.Description)
	}
	if req.ShortDescription != nil {
		record.ShortDescription = req.ShortDescription
	}
	if req.Category != nil {
		record.Category = req.Category
	}
	if req.Price != nil {
		record.Price = req.Price
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	now := s.now()
	if req.Tiers != nil {
		record.Tiers = buildTiers(req.Tiers, s.id, now)
	}
	record.UpdatedAt = now

	return s.services.Update(ctx, record)
}

// DeleteService removes a service and cascades to its generated pages.
func (s *service) DeleteService(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return catalog.ErrServiceIDRequired
	}

	if s.pages != nil {
		removed, err := s.pages.DeleteByService(ctx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			s.logger.Info("catalog.service.pages_removed", "service_id", id.String(), "count", removed)
		}
	}

	return s.services.Delete(ctx, id)
}

// CreateCity validates and persists a new city.
func (s *service) CreateCity(ctx context.Context, req CreateCityRequest) (*catalog.City, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, catalog.ErrCityNameRequired
	}
	state := strings.TrimSpace(req.State)
	if state == "" {
		return nil, catalog.ErrCityStateRequired
	}

	slugValue, err := resolveSlug(req.Slug, name)
	if err != nil {
		return nil, catalog.ErrCitySlugInvalid
	}

	now := s.now()
	record := &catalog.City{
		ID:            s.id(),
		Name:          name,
		Slug:          slugValue,
		State:         state,
		Description:   strings.TrimSpace(req.Description),
		Landmarks:     cleanList(req.Landmarks),
		LocalKeywords: cleanList(req.LocalKeywords),
		IsActive:      boolOrDefault(req.IsActive, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.cities.Create(ctx, record)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, catalog.ErrCitySlugExists
		}
		return nil, err
	}

	s.logger.Info("catalog.city.created", "slug", created.Slug)
	return created, nil
}

// GetCity fetches a city by identifier.
func (s *service) GetCity(ctx context.Context, id uuid.UUID) (*catalog.City, error) {
	if id == uuid.Nil {
		return nil, catalog.ErrCityIDRequired
	}
	return s.cities.GetByID(ctx, id)
}

// GetCityBySlug fetches a city by slug.
func (s *service) GetCityBySlug(ctx context.Context, slug string) (*catalog.City, error) {
	return s.cities.GetBySlug(ctx, strings.TrimSpace(slug))
}

// ListCities returns cities, optionally only active ones.
func (s *service) ListCities(ctx context.Context, opts ListOptions) ([]*catalog.City, error) {
	if opts.ActiveOnly {
		return s.cities.ListActive(ctx)
	}
	return s.cities.List(ctx)
}

// UpdateCity applies the non-nil fields of the request.
func (s *service) UpdateCity(ctx context.Context, req UpdateCityRequest) (*catalog.City, error) {
	if req.ID == uuid.Nil {
		return nil, catalog.ErrCityIDRequired
	}

	record, err := s.cities.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, catalog.ErrCityNameRequired
		}
		record.Name = name
	}
	if req.State != nil {
		state := strings.TrimSpace(*req.State)
		if state == "" {
			return nil, catalog.ErrCityStateRequired
		}
		record.State = state
	}
	if req.Description != nil {
		record.Description = strings.TrimSpace(*req.Description)
	}
	if req.Landmarks != nil {
		record.Landmarks = cleanList(req.Landmarks)
	}
	if req.LocalKeywords != nil {
		record.LocalKeywords = cleanList(req.LocalKeywords)
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	record.UpdatedAt = s.now()

	return s.cities.Update(ctx, record)
}

// DeleteCity removes a city and cascades to its generated pages.
func (s *service) DeleteCity(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return catalog.ErrCityIDRequired
	}

	if s.pages != nil {
		removed, err := s.pages.DeleteByCity(ctx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			s.logger.Info("catalog.city.pages_removed", "city_id", id.String(), "count", removed)
		}
	}

	return s.cities.Delete(ctx, id)
}

// resolveSlug normalizes the explicit slug when provided, otherwise derives
// one from the display name.
func resolveSlug(explicit, fallback string) (string, error) {
	source := strings.TrimSpace(explicit)
	if source == "" {
		source = fallback
	}
	return catalog.NormalizeSlug(source)
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func buildTiers(inputs []TierInput, id IDGenerator, now time.Time) []*catalog.ServiceTier {
	if inputs == nil {
		return nil
	}
	tiers := make([]*catalog.ServiceTier, 0, len(inputs))
	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			continue
		}
		tiers = append(tiers, &catalog.ServiceTier{
			ID:           id(),
			Name:         name,
			PriceINR:     input.PriceINR,
			PriceUSD:     input.PriceUSD,
			Features:     cleanList(input.Features),
			DeliveryDays: input.DeliveryDays,
			Revisions:    input.Revisions,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return tiers
}
