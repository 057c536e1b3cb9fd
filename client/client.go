// Package client speaks the backend's REST contract: uniform response
// envelope, bearer authentication sourced from the credential store, and a
// global unauthorized hook that clears the session wherever a 401 surfaces.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/credstore"
	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/notify"
)

// requestTimeout is deliberately long: the agent analysis endpoint can take
// minutes on large candidate pools.
const requestTimeout = 5 * time.Minute

type Client struct {
	baseURL  string
	http     *http.Client
	creds    credstore.Store
	notifier notify.Notifier
	logger   zerolog.Logger

	// OnUnauthorized runs after a 401 has cleared the credential store,
	// e.g. to send the console back to the login flow.
	OnUnauthorized func()
}

func New(baseURL string, creds credstore.Store, notifier notify.Notifier) *Client {
	logger := log.With().Str("component", "client").Logger()

	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: requestTimeout},
		creds:    creds,
		notifier: notifier,
		logger:   logger,
	}
}

// do sends a JSON request and decodes the uniform envelope. body may be nil.
func (c *Client) do(ctx context.Context, method, path string, body any) (*models.Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to marshal request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// Do sends an arbitrary request body (e.g. multipart form data) with the
// same auth headers and status handling as the JSON paths, returning the raw
// response bytes on success. Used by endpoints that do not speak the
// envelope, such as the agent ones.
func (c *Client) Do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to build request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.sendRaw(req)
}

// send executes the request and decodes the uniform envelope.
func (c *Client) send(req *http.Request) (*models.Envelope, error) {
	bodyBytes, err := c.sendRaw(req)
	if err != nil {
		return nil, err
	}

	var envelope models.Envelope
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to decode response envelope", err)
		}
	}
	return &envelope, nil
}

// sendRaw attaches auth and correlation headers, executes the request and
// maps the response onto the error taxonomy.
func (c *Client) sendRaw(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token, ok := c.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("request failed")
		apiErr := errs.NewFetchError(0, "network error")
		apiErr.Cause = err
		return nil, apiErr
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to read response body", err)
	}

	if resp.StatusCode >= 400 {
		// Error bodies are usually enveloped; a decode failure just means
		// the details message stays empty and a generic one is used.
		var envelope models.Envelope
		_ = json.Unmarshal(bodyBytes, &envelope)

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return nil, c.handleUnauthorized(envelope.Details)
		case resp.StatusCode >= 500:
			c.logger.Error().Int("status", resp.StatusCode).Str("path", req.URL.Path).Str("details", envelope.Details).Msg("server error")
			return nil, errs.NewServerError(resp.StatusCode, envelope.Details)
		default:
			details := envelope.Details
			if details == "" {
				details = fmt.Sprintf("request failed with status %d", resp.StatusCode)
			}
			return nil, errs.NewFetchError(resp.StatusCode, details)
		}
	}

	return bodyBytes, nil
}

// handleUnauthorized implements the global 401 policy: clear the persisted
// credential, notify once, then hand control to the login redirect hook.
func (c *Client) handleUnauthorized(details string) error {
	if err := c.creds.Clear(); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear credentials")
	}
	c.notifier.Error("Your session has expired. Please log in again.")
	if c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
	return errs.NewAuthError(details)
}

// decodeObject unwraps the envelope's data as a single raw entity object.
func decodeObject(envelope *models.Envelope) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(envelope.Data, &raw); err != nil {
		return nil, errs.NewInternalErrorWithCause("unexpected entity payload", err)
	}
	return raw, nil
}

// decodeList unwraps the envelope's data as a raw entity collection.
func decodeList(envelope *models.Envelope) ([]map[string]any, error) {
	var raw []map[string]any
	if err := json.Unmarshal(envelope.Data, &raw); err != nil {
		return nil, errs.NewInternalErrorWithCause("unexpected collection payload", err)
	}
	return raw, nil
}
