package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/blog-service-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus marshals data first so a marshalling failure can still
// become a 500 instead of a half-written body.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps a classified failure to its status code and body. It is
// the only place that turns errors into wire responses: storage and
// unclassified failures are logged here and surfaced as a generic 5xx, so
// their causes never reach the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeInternal(w, http.StatusInternalServerError)
		return
	}

	// The cause stays in the log; callers only see the classified message.
	if apiErr.Cause != nil {
		r.logger.Error().
			Int("status", apiErr.StatusCode).
			Str("cause", apiErr.GetFullError()).
			Msg("request failed")
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.writeInternal(w, apiErr.StatusCode)
		return
	}

	// Build response based on error details
	response := map[string]any{
		"error":  apiErr.Error(),
		"status": "error",
	}

	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}

	// Per-field detail list for validation errors
	if len(apiErr.Violations) > 0 {
		response["errors"] = apiErr.Violations
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, response)
}

func (r Responder) writeInternal(w http.ResponseWriter, status int) {
	r.WriteJSONStatus(w, status, map[string]any{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred",
		"status":  "error",
	})
}
