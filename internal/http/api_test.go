package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-localpages/internal/catalog"
	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/seo"
	"github.com/goliatone/go-localpages/internal/sitemap"
	"github.com/google/uuid"
)

type apiFixture struct {
	mux      *http.ServeMux
	catalog  catalog.Service
	pages    intpages.Service
	pageRepo *intpages.MemoryPageRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	serviceRepo := catalog.NewMemoryServiceRepository()
	cityRepo := catalog.NewMemoryCityRepository()
	pageRepo := intpages.NewMemoryPageRepository()

	catalogService := catalog.NewService(serviceRepo, cityRepo, catalog.WithPageRemover(pageRepo))
	pageService := intpages.NewService(pageRepo)

	urls, err := seo.NewURLBuilder("https://example.com")
	if err != nil {
		t.Fatalf("NewURLBuilder: %v", err)
	}
	engine := seo.NewEngine(urls, seo.WithSiteName("Example Studio"))
	generator := intpages.NewGenerator(serviceRepo, cityRepo, pageRepo, engine)
	builder := sitemap.NewBuilder(cityRepo, pageRepo, urls)

	api := NewAdminAPI(
		WithCatalogService(catalogService),
		WithPageService(pageService),
		WithGenerator(generator),
		WithSitemap(builder),
		WithSiteBaseURL("https://example.com"),
	)

	mux := http.NewServeMux()
	api.Register(mux)

	return &apiFixture{
		mux:      mux,
		catalog:  catalogService,
		pages:    pageService,
		pageRepo: pageRepo,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	f.mux.ServeHTTP(recorder, req)
	return recorder
}

func (f *apiFixture) seedCity(t *testing.T) uuid.UUID {
	t.Helper()
	city, err := f.catalog.CreateCity(context.Background(), catalog.CreateCityRequest{
		Name:      "Pune",
		State:     "Maharashtra",
		Landmarks: []string{"Shaniwar Wada"},
	})
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}
	return city.ID
}

func (f *apiFixture) seedServices(t *testing.T, titles ...string) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, len(titles))
	for _, title := range titles {
		svc, err := f.catalog.CreateService(context.Background(), catalog.CreateServiceRequest{
			Title:       title,
			Description: "Full service offering for local businesses.",
		})
		if err != nil {
			t.Fatalf("CreateService(%q): %v", title, err)
		}
		ids = append(ids, svc.ID)
	}
	return ids
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
	}
}

func TestGeneratePagesEndpoint(t *testing.T) {
	fixture := newAPIFixture(t)
	cityID := fixture.seedCity(t)
	fixture.seedServices(t, "Web Design", "Logo Design")

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var payload generateResponse
	decodeBody(t, recorder, &payload)
	if len(payload.Generated) != 2 {
		t.Fatalf("expected 2 generated pages, got %d", len(payload.Generated))
	}
	if len(payload.Skipped) != 0 || len(payload.Errors) != 0 {
		t.Fatalf("expected clean run, got skipped=%d errors=%d", len(payload.Skipped), len(payload.Errors))
	}
	if payload.Summary.Generated != 2 {
		t.Fatalf("summary generated = %d, want 2", payload.Summary.Generated)
	}

	// a second run finds every page in place
	recorder = fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 on rerun, got %d", recorder.Code)
	}
	decodeBody(t, recorder, &payload)
	if len(payload.Generated) != 0 || len(payload.Skipped) != 2 {
		t.Fatalf("rerun: generated=%d skipped=%d, want 0/2", len(payload.Generated), len(payload.Skipped))
	}
}

func TestGeneratePagesUnknownCity(t *testing.T) {
	fixture := newAPIFixture(t)
	fixture.seedServices(t, "Web Design")

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+uuid.New().String()+"/generate-pages", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown city, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var payload errorResponse
	decodeBody(t, recorder, &payload)
	if payload.Error != "not_found" {
		t.Fatalf("error code = %q, want not_found", payload.Error)
	}
}

func TestGeneratePagesNoActiveServices(t *testing.T) {
	fixture := newAPIFixture(t)
	cityID := fixture.seedCity(t)

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 with no active services, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestRegeneratePagesEndpoint(t *testing.T) {
	fixture := newAPIFixture(t)
	cityID := fixture.seedCity(t)
	fixture.seedServices(t, "Web Design")

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("seed generate failed: %d", recorder.Code)
	}

	recorder = fixture.do(t, http.MethodPut, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 on regenerate, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var payload regenerateResponse
	decodeBody(t, recorder, &payload)
	if len(payload.Updated) != 1 {
		t.Fatalf("expected 1 updated page, got %d", len(payload.Updated))
	}
	if payload.Summary.Generated != 1 {
		t.Fatalf("summary generated = %d, want 1", payload.Summary.Generated)
	}
}

func TestServicePageListFiltersByCity(t *testing.T) {
	fixture := newAPIFixture(t)
	puneID := fixture.seedCity(t)
	mumbai, err := fixture.catalog.CreateCity(context.Background(), catalog.CreateCityRequest{
		Name:  "Mumbai",
		State: "Maharashtra",
	})
	if err != nil {
		t.Fatalf("CreateCity: %v", err)
	}
	fixture.seedServices(t, "Web Design", "Logo Design")

	for _, id := range []uuid.UUID{puneID, mumbai.ID} {
		recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+id.String()+"/generate-pages", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("generate for %s failed: %d", id, recorder.Code)
		}
	}

	recorder := fixture.do(t, http.MethodGet, "/admin/api/service-pages?cityId="+puneID.String(), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var records []map[string]any
	decodeBody(t, recorder, &records)
	if len(records) != 2 {
		t.Fatalf("expected 2 pages for Pune, got %d", len(records))
	}
	for _, record := range records {
		if got := record["city_id"]; got != puneID.String() {
			t.Fatalf("city_id = %v, want %s", got, puneID)
		}
		if _, ok := record["service"]; !ok {
			t.Fatalf("expected joined service relation in %v", record)
		}
	}
}

func TestUpdatePageMetaMarksHandCurated(t *testing.T) {
	fixture := newAPIFixture(t)
	cityID := fixture.seedCity(t)
	fixture.seedServices(t, "Web Design")

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("generate failed: %d", recorder.Code)
	}
	var generated generateResponse
	decodeBody(t, recorder, &generated)
	pageID := generated.Generated[0].PageID

	title := "Hand written title"
	recorder = fixture.do(t, http.MethodPut, "/admin/api/service-pages/"+pageID.String(), pageMetaUpdatePayload{
		Title: &title,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var page map[string]any
	decodeBody(t, recorder, &page)
	if page["title"] != title {
		t.Fatalf("title = %v, want %q", page["title"], title)
	}
	if page["is_generated"] != false {
		t.Fatalf("is_generated = %v, want false after manual edit", page["is_generated"])
	}
}

func TestDeletePageEndpoint(t *testing.T) {
	fixture := newAPIFixture(t)
	cityID := fixture.seedCity(t)
	fixture.seedServices(t, "Web Design")

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	var generated generateResponse
	decodeBody(t, recorder, &generated)
	pageID := generated.Generated[0].PageID

	recorder = fixture.do(t, http.MethodDelete, "/admin/api/service-pages/"+pageID.String(), nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}

	recorder = fixture.do(t, http.MethodGet, "/admin/api/service-pages/"+pageID.String(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", recorder.Code)
	}
}

func TestCreateServiceEndpoint(t *testing.T) {
	fixture := newAPIFixture(t)

	recorder := fixture.do(t, http.MethodPost, "/admin/api/services", serviceCreatePayload{
		Title: "Logo Design",
		Tiers: []tierPayload{
			{Name: "Basic", PriceINR: 4999, PriceUSD: 59},
		},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var record map[string]any
	decodeBody(t, recorder, &record)
	if record["slug"] != "logo-design" {
		t.Fatalf("slug = %v, want logo-design", record["slug"])
	}

	// same slug again conflicts
	recorder = fixture.do(t, http.MethodPost, "/admin/api/services", serviceCreatePayload{Title: "Logo Design"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate slug, got %d", recorder.Code)
	}
	var failure errorResponse
	decodeBody(t, recorder, &failure)
	if failure.Error != "already_exists" {
		t.Fatalf("error code = %q, want already_exists", failure.Error)
	}
}

func TestSitemapEndpoint(t *testing.T) {
	fixture := newAPIFixture(t)
	cityID := fixture.seedCity(t)
	fixture.seedServices(t, "Web Design")

	recorder := fixture.do(t, http.MethodPost, "/admin/api/cities/"+cityID.String()+"/generate-pages", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("generate failed: %d", recorder.Code)
	}

	recorder = fixture.do(t, http.MethodGet, "/sitemap.xml", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/xml") {
		t.Fatalf("content type = %q", got)
	}
	body := recorder.Body.String()
	for _, want := range []string{
		"<urlset",
		"https://example.com/",
		"https://example.com/cities/pune",
		"https://example.com/pune-web-design",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("sitemap missing %q:\n%s", want, body)
		}
	}
}

func TestRobotsEndpoint(t *testing.T) {
	fixture := newAPIFixture(t)

	recorder := fixture.do(t, http.MethodGet, "/robots.txt", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	want := fmt.Sprintf("Sitemap: %s/sitemap.xml", "https://example.com")
	if !strings.Contains(recorder.Body.String(), want) {
		t.Fatalf("robots body missing %q:\n%s", want, recorder.Body.String())
	}
}
