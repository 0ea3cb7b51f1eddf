package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	rootcatalog "github.com/goliatone/go-localpages/catalog"
	"github.com/goliatone/go-localpages/internal/catalog"
	intpages "github.com/goliatone/go-localpages/internal/pages"
	"github.com/goliatone/go-localpages/internal/seo"
	"github.com/goliatone/go-localpages/internal/validation"
	"github.com/goliatone/go-localpages/pages"
	"github.com/google/uuid"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message,omitempty"`
	Issues  []validation.ValidationIssue `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var catalogNotFound *catalog.NotFoundError
	if errors.As(err, &catalogNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: catalogNotFound.Error(),
		}
	}

	var pageNotFound *intpages.NotFoundError
	if errors.As(err, &pageNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: pageNotFound.Error(),
		}
	}

	var duplicate *catalog.DuplicateKeyError
	if errors.As(err, &duplicate) ||
		errors.Is(err, rootcatalog.ErrServiceSlugExists) ||
		errors.Is(err, rootcatalog.ErrCitySlugExists) {
		return http.StatusBadRequest, errorResponse{
			Error:   "already_exists",
			Message: err.Error(),
		}
	}

	var payloadErr *validation.PayloadValidationError
	if errors.As(err, &payloadErr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: payloadErr.Error(),
			Issues:  validation.Issues(err),
		}
	}

	var templateErr *seo.TemplateError
	if errors.As(err, &templateErr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "template_error",
			Message: templateErr.Error(),
		}
	}

	if errors.Is(err, rootcatalog.ErrServiceTitleRequired) ||
		errors.Is(err, rootcatalog.ErrServiceIDRequired) ||
		errors.Is(err, rootcatalog.ErrServiceSlugInvalid) ||
		errors.Is(err, rootcatalog.ErrCityNameRequired) ||
		errors.Is(err, rootcatalog.ErrCityStateRequired) ||
		errors.Is(err, rootcatalog.ErrCityIDRequired) ||
		errors.Is(err, rootcatalog.ErrCitySlugInvalid) ||
		errors.Is(err, pages.ErrPageIDRequired) ||
		errors.Is(err, pages.ErrNoActiveServices) {
		return http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}

func parseBoolQuery(value string, defaultValue bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}
