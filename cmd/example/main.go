package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	localpages "github.com/goliatone/go-localpages"
)

func main() {
	ctx := context.Background()

	cfg := localpages.DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	cfg.Site.SiteName = "Acme Digital"
	cfg.Storage.Provider = "memory"
	cfg.Features.Logger = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "info"

	module, err := localpages.New(cfg)
	if err != nil {
		log.Fatalf("init module: %v", err)
	}

	if err := seedCatalog(ctx, module); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	cities, err := module.Catalog().ListCities(ctx, localpages.ListCatalogOptions{ActiveOnly: true})
	if err != nil {
		log.Fatalf("list cities: %v", err)
	}

	for _, city := range cities {
		summary, err := module.Generator().Generate(ctx, city.ID)
		if err != nil {
			log.Fatalf("generate pages for %s: %v", city.Slug, err)
		}
		generated, skipped, errored := summary.Counts()
		fmt.Printf("%s: generated=%d skipped=%d errored=%d\n", city.Slug, generated, skipped, errored)
	}

	pages, err := module.Pages().ListPages(ctx, localpages.ListPageFilter{WithRelations: true})
	if err != nil {
		log.Fatalf("list pages: %v", err)
	}
	for _, page := range pages {
		fmt.Printf("  %s -> %s\n", page.Slug, page.CanonicalURL)
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		mux := http.NewServeMux()
		module.RegisterRoutes(mux)
		fmt.Println("listening on :8080")
		log.Fatal(http.ListenAndServe(":8080", mux))
	}

	if len(pages) > 0 {
		dump, _ := json.MarshalIndent(pages[0], "", "  ")
		fmt.Println(string(dump))
	}
}

func seedCatalog(ctx context.Context, module *localpages.Module) error {
	for _, req := range []localpages.CreateCityRequest{
		{
			Name:      "Pune",
			State:     "Maharashtra",
			Landmarks: []string{"Shaniwar Wada", "Aga Khan Palace"},
		},
		{
			Name:      "Kochi",
			State:     "Kerala",
			Landmarks: []string{"Fort Kochi"},
		},
	} {
		if _, err := module.Catalog().CreateCity(ctx, req); err != nil {
			return fmt.Errorf("create city %s: %w", req.Name, err)
		}
	}

	for _, req := range []localpages.CreateServiceRequest{
		{
			Title:       "Web Design",
			Description: "Responsive business websites built to convert.",
			Tiers: []localpages.TierInput{
				{Name: "Basic", PriceINR: 14999, PriceUSD: 179, DeliveryDays: 7},
				{Name: "Premium", PriceINR: 39999, PriceUSD: 479, DeliveryDays: 14},
			},
		},
		{
			Title:       "Logo Design",
			Description: "Brand identity packages with unlimited concepts.",
		},
	} {
		if _, err := module.Catalog().CreateService(ctx, req); err != nil {
			return fmt.Errorf("create service %s: %w", req.Title, err)
		}
	}

	return nil
}
