// Package stubserver is an in-process double of the dashboard backend,
// faithful to its HTTP contract: the uniform response envelope, the legacy
// field-naming quirks the normalizer exists for, the append-only use_cases
// update, and the absence of any DELETE endpoint. It backs the stubserver
// binary and the end-to-end tests.
package stubserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

type envelope struct {
	Details    string             `json:"details"`
	Data       any                `json:"data,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

func (r Responder) WriteEnvelope(w http.ResponseWriter, status int, details string, data any, pagination *models.Pagination) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	payload, err := json.Marshal(envelope{Details: details, Data: data, Pagination: pagination})
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteEnvelope(w, http.StatusInternalServerError, "An unexpected error occurred", nil, nil)
		return
	}

	details := apiErr.Details
	if details == "" {
		details = apiErr.Error()
	}
	r.WriteEnvelope(w, apiErr.StatusCode, details, nil, nil)
}
