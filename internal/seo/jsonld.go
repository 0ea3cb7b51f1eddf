package seo

import (
	"github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/render"
)

// serviceStructuredData emits the schema.org Service object for a page.
func serviceStructuredData(service *catalog.Service, city *catalog.City, canonicalURL, siteName string) map[string]any {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        service.Title,
		"serviceType": service.Title,
		"url":         canonicalURL,
		"areaServed": map[string]any{
			"@type": "City",
			"name":  city.Name,
			"containedInPlace": map[string]any{
				"@type": "State",
				"name":  city.State,
			},
		},
		"provider": map[string]any{
			"@type": "LocalBusiness",
			"name":  siteName,
		},
	}

	if offer := serviceOffer(service); offer != nil {
		data["offers"] = offer
	}
	if service.Description != "" {
		data["description"] = service.Description
	}

	return data
}

func serviceOffer(service *catalog.Service) map[string]any {
	if service.Price != nil {
		return map[string]any{
			"@type":         "Offer",
			"price":         *service.Price,
			"priceCurrency": "INR",
		}
	}
	if len(service.Tiers) == 0 {
		return nil
	}

	lowest := service.Tiers[0].PriceINR
	for _, tier := range service.Tiers[1:] {
		if tier.PriceINR < lowest {
			lowest = tier.PriceINR
		}
	}
	return map[string]any{
		"@type":         "Offer",
		"price":         lowest,
		"priceCurrency": "INR",
	}
}

// faqSchema derives the schema.org FAQPage object from the FAQ pairs present
// in the generated content, keeping the visible FAQ and the emitted schema in
// lockstep.
func faqSchema(content string) map[string]any {
	items := render.FAQItems(render.Parse(content))
	mainEntity := make([]any, 0, len(items))
	for _, item := range items {
		mainEntity = append(mainEntity, map[string]any{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  item.Answer,
			},
		})
	}

	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": mainEntity,
	}
}
