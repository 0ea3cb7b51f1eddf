package http

import "net/http"

func (api *AdminAPI) registerSitemapRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET /sitemap.xml", api.handleSitemap)
	mux.HandleFunc("GET /robots.txt", api.handleRobots)
}

func (api *AdminAPI) handleSitemap(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sitemap == nil {
		http.NotFound(w, r)
		return
	}
	body, err := api.sitemap.XML(r.Context())
	if err != nil {
		api.logger.Error("sitemap render failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (api *AdminAPI) handleRobots(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.sitemap == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(api.sitemap.Robots(api.siteBaseURL)))
}
