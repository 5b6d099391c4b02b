package httputil

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
)

// allowedMethods is the fixed advisory list returned with every 405.
var allowedMethods = []string{"GET", "POST", "PUT", "DELETE"}

// ErrorEnvelope is the canonical error shape:
// {"success":false, message?, errors?, error?, name?}.
type ErrorEnvelope struct {
	Success        bool                `json:"success"`
	Message        string              `json:"message,omitempty"`
	Errors         []domain.FieldError `json:"errors,omitempty"`
	Error          string              `json:"error,omitempty"`
	Name           string              `json:"name,omitempty"`
	AllowedMethods []string            `json:"allowedMethods,omitempty"`
}

// RespondError is the single terminal stage for request failures. It
// classifies err with an ordered rule set, first match wins; a failure
// could satisfy more than one shape, and the ordering keeps the
// client-visible body deterministic:
//
//  1. a response was already written: log only, never double-send;
//  2. method-not-allowed: 405 with the fixed advisory method list;
//  3. field-map validation failure (ozzo): 400 "Validation Error" with
//     one {message, param} entry per field, sorted by param;
//  4. a classified error carrying structured sub-errors: its status,
//     its message, the array verbatim;
//  5. anything else: the kind's status (500 when unclassified), body
//     {error, name}. Internal detail is logged here and only here.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if t, ok := w.(*ResponseTracker); ok && t.Wrote() {
		logger.Error("failure after response already sent",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		return
	}

	var apiErr *domain.Error
	if errors.As(err, &apiErr) && apiErr.Kind == domain.KindMethodNotAllowed {
		RespondJSON(w, http.StatusMethodNotAllowed, ErrorEnvelope{
			Message:        apiErr.Message,
			AllowedMethods: allowedMethods,
		})
		return
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		RespondJSON(w, http.StatusBadRequest, ErrorEnvelope{
			Message: "Validation Error",
			Errors:  projectFieldErrors(fieldErrs),
		})
		return
	}

	if apiErr != nil && len(apiErr.Fields) > 0 {
		RespondJSON(w, apiErr.Status(), ErrorEnvelope{
			Message: apiErr.Message,
			Errors:  apiErr.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	message := "Internal Server Error"
	name := domain.KindInternal.String()
	if apiErr != nil {
		status = apiErr.Status()
		message = apiErr.Message
		name = apiErr.Kind.String()
	}

	if status >= http.StatusInternalServerError {
		logger.Error("unexpected error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
	} else {
		logger.Info("request failed",
			"status", status,
			"error", message,
			"path", r.URL.Path,
			"method", r.Method,
		)
	}

	RespondJSON(w, status, ErrorEnvelope{Error: message, Name: name})
}

// projectFieldErrors flattens an ozzo field-error map into the envelope's
// errors array. Params are sorted so the body is stable across runs.
func projectFieldErrors(fieldErrs validation.Errors) []domain.FieldError {
	params := make([]string, 0, len(fieldErrs))
	for param := range fieldErrs {
		params = append(params, param)
	}
	sort.Strings(params)

	projected := make([]domain.FieldError, 0, len(params))
	for _, param := range params {
		projected = append(projected, domain.FieldError{
			Message: fieldErrs[param].Error(),
			Param:   param,
		})
	}
	return projected
}
