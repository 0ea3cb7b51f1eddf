package http

import (
	"net/http"

	"github.com/goliatone/go-localpages/internal/catalog"
)

type tierPayload struct {
	Name         string   `json:"name"`
	PriceINR     float64  `json:"price_inr"`
	PriceUSD     float64  `json:"price_usd"`
	Features     []string `json:"features,omitempty"`
	DeliveryDays int      `json:"delivery_days,omitempty"`
	Revisions    int      `json:"revisions,omitempty"`
}

type serviceCreatePayload struct {
	Title            string        `json:"title"`
	Slug             string        `json:"slug,omitempty"`
	Description      string        `json:"description,omitempty"`
	ShortDescription *string       `json:"short_description,omitempty"`
	Category         *string       `json:"category,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	IsActive         *bool         `json:"is_active,omitempty"`
	Tiers            []tierPayload `json:"tiers,omitempty"`
}

type serviceUpdatePayload struct {
	Title            *string       `json:"title,omitempty"`
	Description      *string       `json:"description,omitempty"`
	ShortDescription *string       `json:"short_description,omitempty"`
	Category         *string       `json:"category,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	IsActive         *bool         `json:"is_active,omitempty"`
	Tiers            []tierPayload `json:"tiers,omitempty"`
}

type cityCreatePayload struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	State         string   `json:"state"`
	Description   string   `json:"description,omitempty"`
	Landmarks     []string `json:"landmarks,omitempty"`
	LocalKeywords []string `json:"local_keywords,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type cityUpdatePayload struct {
	Name          *string  `json:"name,omitempty"`
	State         *string  `json:"state,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Landmarks     []string `json:"landmarks,omitempty"`
	LocalKeywords []string `json:"local_keywords,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (api *AdminAPI) registerCatalogRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	services := joinPath(base, "services")
	mux.HandleFunc("GET "+services, api.handleServiceList)
	mux.HandleFunc("POST "+services, api.handleServiceCreate)
	mux.HandleFunc("GET "+services+"/{id}", api.handleServiceGet)
	mux.HandleFunc("PUT "+services+"/{id}", api.handleServiceUpdate)
	mux.HandleFunc("DELETE "+services+"/{id}", api.handleServiceDelete)

	cities := joinPath(base, "cities")
	mux.HandleFunc("GET "+cities, api.handleCityList)
	mux.HandleFunc("POST "+cities, api.handleCityCreate)
	mux.HandleFunc("GET "+cities+"/{id}", api.handleCityGet)
	mux.HandleFunc("PUT "+cities+"/{id}", api.handleCityUpdate)
	mux.HandleFunc("DELETE "+cities+"/{id}", api.handleCityDelete)
}

func (api *AdminAPI) handleServiceList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	records, err := api.catalog.ListServices(r.Context(), catalog.ListOptions{
		ActiveOnly: parseBoolQuery(r.URL.Query().Get("active"), false),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleServiceCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload serviceCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	created, err := api.catalog.CreateService(r.Context(), catalog.CreateServiceRequest{
		Title:            payload.Title,
		Slug:             payload.Slug,
		Description:      payload.Description,
		ShortDescription: payload.ShortDescription,
		Category:         payload.Category,
		Price:            payload.Price,
		IsActive:         payload.IsActive,
		Tiers:            tierInputs(payload.Tiers),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *AdminAPI) handleServiceGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.catalog.GetService(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleServiceUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload serviceUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	req := catalog.UpdateServiceRequest{
		ID:               id,
		Title:            payload.Title,
		Description:      payload.Description,
		ShortDescription: payload.ShortDescription,
		Category:         payload.Category,
		Price:            payload.Price,
		IsActive:         payload.IsActive,
	}
	if payload.Tiers != nil {
		req.Tiers = tierInputs(payload.Tiers)
	}
	updated, err := api.catalog.UpdateService(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handleServiceDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.catalog.DeleteService(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleCityList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	records, err := api.catalog.ListCities(r.Context(), catalog.ListOptions{
		ActiveOnly: parseBoolQuery(r.URL.Query().Get("active"), false),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleCityCreate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload cityCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	created, err := api.catalog.CreateCity(r.Context(), catalog.CreateCityRequest{
		Name:          payload.Name,
		Slug:          payload.Slug,
		State:         payload.State,
		Description:   payload.Description,
		Landmarks:     payload.Landmarks,
		LocalKeywords: payload.LocalKeywords,
		IsActive:      payload.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *AdminAPI) handleCityGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.catalog.GetCity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleCityUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload cityUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	updated, err := api.catalog.UpdateCity(r.Context(), catalog.UpdateCityRequest{
		ID:            id,
		Name:          payload.Name,
		State:         payload.State,
		Description:   payload.Description,
		Landmarks:     payload.Landmarks,
		LocalKeywords: payload.LocalKeywords,
		IsActive:      payload.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handleCityDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.catalog.DeleteCity(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func tierInputs(payloads []tierPayload) []catalog.TierInput {
	if payloads == nil {
		return nil
	}
	out := make([]catalog.TierInput, 0, len(payloads))
	for _, payload := range payloads {
		out = append(out, catalog.TierInput{
			Name:         payload.Name,
			PriceINR:     payload.PriceINR,
			PriceUSD:     payload.PriceUSD,
			Features:     payload.Features,
			DeliveryDays: payload.DeliveryDays,
			Revisions:    payload.Revisions,
		})
	}
	return out
}
