package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	rootcatalog "github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/catalog"
	"github.com/google/uuid"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func newTestService(opts ...catalog.ServiceOption) catalog.Service {
	base := []catalog.ServiceOption{catalog.WithClock(fixedClock)}
	return catalog.NewService(
		catalog.NewMemoryServiceRepository(),
		catalog.NewMemoryCityRepository(),
		append(base, opts...)...,
	)
}

func TestCreateServiceDerivesSlug(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateService(context.Background(), catalog.CreateServiceRequest{
		Title:       "Logo Brand Design",
		Description: "Custom logos for local businesses",
	})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}

	if created.Slug != "logo-brand-design" {
		t.Fatalf("expected derived slug logo-brand-design, got %q", created.Slug)
	}
	if !created.IsActive {
		t.Fatal("expected service to default to active")
	}
	if !created.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("expected clock timestamp, got %v", created.CreatedAt)
	}
}

func TestCreateServiceRequiresTitle(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateService(context.Background(), catalog.CreateServiceRequest{Title: "   "}); !errors.Is(err, rootcatalog.ErrServiceTitleRequired) {
		t.Fatalf("expected ErrServiceTitleRequired, got %v", err)
	}
}

func TestCreateServiceDuplicateSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateService(ctx, catalog.CreateServiceRequest{Title: "Web Design"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	if _, err := svc.CreateService(ctx, catalog.CreateServiceRequest{Title: "Web Design"}); !errors.Is(err, rootcatalog.ErrServiceSlugExists) {
		t.Fatalf("expected ErrServiceSlugExists, got %v", err)
	}
}

func TestCreateServiceWithTiers(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateService(context.Background(), catalog.CreateServiceRequest{
		Title: "SEO Audit",
		Tiers: []catalog.TierInput{
			{Name: "Basic", PriceINR: 4999, PriceUSD: 59, Features: []string{"10 pages", " keyword map "}, DeliveryDays: 5, Revisions: 1},
			{Name: "  ", PriceINR: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}

	if len(created.Tiers) != 1 {
		t.Fatalf("expected blank tier to be dropped, got %d tiers", len(created.Tiers))
	}
	tier := created.Tiers[0]
	if tier.Name != "Basic" || tier.DeliveryDays != 5 {
		t.Fatalf("unexpected tier: %+v", tier)
	}
	if len(tier.Features) != 2 || tier.Features[1] != "keyword map" {
		t.Fatalf("expected trimmed features, got %v", tier.Features)
	}
}

func TestUpdateServicePartialFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateService(ctx, catalog.CreateServiceRequest{
		Title:       "Social Media Marketing",
		Description: "Monthly content calendars",
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	price := 249.0
	inactive := false
	updated, err := svc.UpdateService(ctx, catalog.UpdateServiceRequest{
		ID:       created.ID,
		Price:    &price,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateService returned error: %v", err)
	}

	if updated.Title != "Social Media Marketing" {
		t.Fatalf("title should be untouched, got %q", updated.Title)
	}
	if updated.Price == nil || *updated.Price != price {
		t.Fatalf("expected price %v, got %v", price, updated.Price)
	}
	if updated.IsActive {
		t.Fatal("expected service to be deactivated")
	}
	if updated.Slug != created.Slug {
		t.Fatalf("slug must stay stable, got %q", updated.Slug)
	}
}

func TestUpdateServiceRejectsEmptyTitle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateService(ctx, catalog.CreateServiceRequest{Title: "Branding"})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	blank := "  "
	if _, err := svc.UpdateService(ctx, catalog.UpdateServiceRequest{ID: created.ID, Title: &blank}); !errors.Is(err, rootcatalog.ErrServiceTitleRequired) {
		t.Fatalf("expected ErrServiceTitleRequired, got %v", err)
	}
}

func TestListServicesActiveOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	inactive := false
	if _, err := svc.CreateService(ctx, catalog.CreateServiceRequest{Title: "Active One"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if _, err := svc.CreateService(ctx, catalog.CreateServiceRequest{Title: "Paused One", IsActive: &inactive}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	all, err := svc.ListServices(ctx, catalog.ListOptions{})
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 services, got %d", len(all))
	}

	active, err := svc.ListServices(ctx, catalog.ListOptions{ActiveOnly: true})
	if err != nil {
		t.Fatalf("ListServices(active) returned error: %v", err)
	}
	if len(active) != 1 || active[0].Title != "Active One" {
		t.Fatalf("expected only the active service, got %+v", active)
	}
}

type stubPageRemover struct {
	byService map[uuid.UUID]int
	byCity    map[uuid.UUID]int
}

func (s *stubPageRemover) DeleteByService(_ context.Context, id uuid.UUID) (int, error) {
	n := s.byService[id]
	delete(s.byService, id)
	return n, nil
}

func (s *stubPageRemover) DeleteByCity(_ context.Context, id uuid.UUID) (int, error) {
	n := s.byCity[id]
	delete(s.byCity, id)
	return n, nil
}

func TestDeleteServiceCascadesToPages(t *testing.T) {
	remover := &stubPageRemover{byService: map[uuid.UUID]int{}, byCity: map[uuid.UUID]int{}}
	svc := newTestService(catalog.WithPageRemover(remover))
	ctx := context.Background()

	created, err := svc.CreateService(ctx, catalog.CreateServiceRequest{Title: "Doomed"})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	remover.byService[created.ID] = 4

	if err := svc.DeleteService(ctx, created.ID); err != nil {
		t.Fatalf("DeleteService returned error: %v", err)
	}
	if _, ok := remover.byService[created.ID]; ok {
		t.Fatal("expected generated pages to be removed")
	}

	var notFound *catalog.NotFoundError
	if _, err := svc.GetService(ctx, created.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestCreateCityValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateCity(ctx, catalog.CreateCityRequest{State: "Kerala"}); !errors.Is(err, rootcatalog.ErrCityNameRequired) {
		t.Fatalf("expected ErrCityNameRequired, got %v", err)
	}
	if _, err := svc.CreateCity(ctx, catalog.CreateCityRequest{Name: "Kochi"}); !errors.Is(err, rootcatalog.ErrCityStateRequired) {
		t.Fatalf("expected ErrCityStateRequired, got %v", err)
	}

	created, err := svc.CreateCity(ctx, catalog.CreateCityRequest{
		Name:      "Kochi",
		State:     "Kerala",
		Landmarks: []string{"Marine Drive", " Fort Kochi "},
	})
	if err != nil {
		t.Fatalf("CreateCity returned error: %v", err)
	}
	if created.Slug != "kochi" {
		t.Fatalf("expected slug kochi, got %q", created.Slug)
	}
	if len(created.Landmarks) != 2 || created.Landmarks[1] != "Fort Kochi" {
		t.Fatalf("expected trimmed landmarks, got %v", created.Landmarks)
	}
}

func TestCreateCityDuplicateSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateCity(ctx, catalog.CreateCityRequest{Name: "Pune", State: "Maharashtra"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if _, err := svc.CreateCity(ctx, catalog.CreateCityRequest{Name: "Pune", State: "Maharashtra"}); !errors.Is(err, rootcatalog.ErrCitySlugExists) {
		t.Fatalf("expected ErrCitySlugExists, got %v", err)
	}
}

func TestUpdateCityPartialFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, catalog.CreateCityRequest{Name: "Jaipur", State: "Rajasthan"})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	desc := "The pink city"
	updated, err := svc.UpdateCity(ctx, catalog.UpdateCityRequest{
		ID:            created.ID,
		Description:   &desc,
		LocalKeywords: []string{"jaipur web design"},
	})
	if err != nil {
		t.Fatalf("UpdateCity returned error: %v", err)
	}
	if updated.Description != desc {
		t.Fatalf("expected description update, got %q", updated.Description)
	}
	if updated.Name != "Jaipur" || updated.State != "Rajasthan" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if len(updated.LocalKeywords) != 1 {
		t.Fatalf("expected keyword replacement, got %v", updated.LocalKeywords)
	}
}

func TestDeleteCityCascadesToPages(t *testing.T) {
	remover := &stubPageRemover{byService: map[uuid.UUID]int{}, byCity: map[uuid.UUID]int{}}
	svc := newTestService(catalog.WithPageRemover(remover))
	ctx := context.Background()

	created, err := svc.CreateCity(ctx, catalog.CreateCityRequest{Name: "Indore", State: "Madhya Pradesh"})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	remover.byCity[created.ID] = 2

	if err := svc.DeleteCity(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCity returned error: %v", err)
	}
	if _, ok := remover.byCity[created.ID]; ok {
		t.Fatal("expected generated pages to be removed")
	}
}
