package http

import (
	"net/http"

	intpages "github.com/goliatone/go-localpages/internal/pages"
)

type pageMetaUpdatePayload struct {
	Title           *string  `json:"title,omitempty"`
	MetaTitle       *string  `json:"meta_title,omitempty"`
	MetaDescription *string  `json:"meta_description,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	Content         *string  `json:"content,omitempty"`
}

type summaryCounts struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Errored   int `json:"errored"`
}

type generateResponse struct {
	Generated []intpages.PageRef     `json:"generated"`
	Skipped   []intpages.PageRef     `json:"skipped"`
	Errors    []intpages.PageFailure `json:"errors"`
	Summary   summaryCounts          `json:"summary"`
}

type regenerateResponse struct {
	Updated []intpages.PageRef     `json:"updated"`
	Errors  []intpages.PageFailure `json:"errors"`
	Summary summaryCounts          `json:"summary"`
}

func (api *AdminAPI) registerPageRoutes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	cities := joinPath(base, "cities")
	mux.HandleFunc("POST "+cities+"/{id}/generate-pages", api.handleGeneratePages)
	mux.HandleFunc("PUT "+cities+"/{id}/generate-pages", api.handleRegeneratePages)

	root := joinPath(base, "service-pages")
	mux.HandleFunc("GET "+root, api.handlePageList)
	mux.HandleFunc("GET "+root+"/{id}", api.handlePageGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handlePageUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handlePageDelete)
}

func (api *AdminAPI) handleGeneratePages(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.generator == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	summary, err := api.generator.Generate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	generated, skipped, errored := summary.Counts()
	writeJSON(w, http.StatusOK, generateResponse{
		Generated: orEmptyRefs(summary.Generated),
		Skipped:   orEmptyRefs(summary.Skipped),
		Errors:    orEmptyFailures(summary.Errored),
		Summary:   summaryCounts{Generated: generated, Skipped: skipped, Errored: errored},
	})
}

func (api *AdminAPI) handleRegeneratePages(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.generator == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	summary, err := api.generator.Regenerate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	generated, skipped, errored := summary.Counts()
	writeJSON(w, http.StatusOK, regenerateResponse{
		Updated: orEmptyRefs(summary.Generated),
		Errors:  orEmptyFailures(summary.Errored),
		Summary: summaryCounts{Generated: generated, Skipped: skipped, Errored: errored},
	})
}

func (api *AdminAPI) handlePageList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	filter := intpages.ListFilter{WithRelations: true}
	query := r.URL.Query()
	if raw := query.Get("cityId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid cityId"})
			return
		}
		filter.CityID = id
	}
	if raw := query.Get("serviceId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid serviceId"})
			return
		}
		filter.ServiceID = id
	}

	records, err := api.pages.ListPages(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handlePageGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.pages.GetPage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handlePageUpdate(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var payload pageMetaUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	updated, err := api.pages.UpdatePageMeta(r.Context(), intpages.UpdateMetaRequest{
		ID:              id,
		Title:           payload.Title,
		MetaTitle:       payload.MetaTitle,
		MetaDescription: payload.MetaDescription,
		Keywords:        payload.Keywords,
		Content:         payload.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *AdminAPI) handlePageDelete(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.pages.DeletePage(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func orEmptyRefs(refs []intpages.PageRef) []intpages.PageRef {
	if refs == nil {
		return []intpages.PageRef{}
	}
	return refs
}

func orEmptyFailures(failures []intpages.PageFailure) []intpages.PageFailure {
	if failures == nil {
		return []intpages.PageFailure{}
	}
	return failures
}
