package generatecmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	rootcatalog "github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/catalog"
	generatecmd "github.com/goliatone/go-localpages/internal/commands/generate"
	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/seo"
	"github.com/google/uuid"
)

func newGenerator(t *testing.T) (*intpages.Generator, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	services := catalog.NewMemoryServiceRepository()
	cities := catalog.NewMemoryCityRepository()
	repo := intpages.NewMemoryPageRepository()

	price := 4999.0
	if _, err := services.Create(ctx, &rootcatalog.Service{
		ID:       uuid.New(),
		Title:    "Website Development",
		Slug:     "website-development",
		Price:    &price,
		IsActive: true,
	}); err != nil {
		t.Fatalf("seed service failed: %v", err)
	}

	city, err := cities.Create(ctx, &rootcatalog.City{
		ID:       uuid.New(),
		Name:     "Pune",
		Slug:     "pune",
		State:    "Maharashtra",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed city failed: %v", err)
	}

	urls, err := seo.NewURLBuilder("https://example.com")
	if err != nil {
		t.Fatalf("NewURLBuilder returned error: %v", err)
	}

	return intpages.NewGenerator(services, cities, repo, seo.NewEngine(urls)), city.ID
}

func TestGeneratePagesCommand(t *testing.T) {
	generator, cityID := newGenerator(t)

	var captured *intpages.Summary
	handler := generatecmd.NewGeneratePagesHandler(generator, nil, func(summary *intpages.Summary) {
		captured = summary
	})

	if err := handler.Execute(context.Background(), generatecmd.GeneratePagesCommand{CityID: cityID}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if captured == nil {
		t.Fatal("expected summary to be delivered to the sink")
	}
	if generated, _, _ := captured.Counts(); generated != 1 {
		t.Fatalf("expected 1 generated page, got %+v", captured)
	}
}

func TestGeneratePagesCommandValidation(t *testing.T) {
	generator, _ := newGenerator(t)
	handler := generatecmd.NewGeneratePagesHandler(generator, nil, nil)

	err := handler.Execute(context.Background(), generatecmd.GeneratePagesCommand{})
	if err == nil {
		t.Fatal("expected validation error for missing city id")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestRegeneratePagesCommand(t *testing.T) {
	generator, cityID := newGenerator(t)

	if err := generatecmd.NewGeneratePagesHandler(generator, nil, nil).
		Execute(context.Background(), generatecmd.GeneratePagesCommand{CityID: cityID}); err != nil {
		t.Fatalf("seed generate failed: %v", err)
	}

	var captured *intpages.Summary
	handler := generatecmd.NewRegeneratePagesHandler(generator, nil, func(summary *intpages.Summary) {
		captured = summary
	})

	if err := handler.Execute(context.Background(), generatecmd.RegeneratePagesCommand{CityID: cityID}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if captured == nil || len(captured.Generated) != 1 {
		t.Fatalf("expected regenerated summary, got %+v", captured)
	}
}
