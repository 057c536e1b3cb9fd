package client

import (
	"context"
	"net/http"

	"github.com/rpupo63/devdash-console/errs"
)

// Login exchanges credentials for a bearer token and persists it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if email == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if password == "" {
		return errs.NewMissingRequiredFieldError("password")
	}

	envelope, err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	raw, err := decodeObject(envelope)
	if err != nil {
		return err
	}
	token, _ := raw["token"].(string)
	if token == "" {
		return errs.NewInternalError("login response carried no token")
	}

	if err := c.creds.Save(token); err != nil {
		return errs.NewInternalErrorWithCause("failed to persist credentials", err)
	}
	c.logger.Info().Str("email", email).Msg("logged in")
	return nil
}

// Logout discards the persisted credential. Purely local; the contract has
// no logout endpoint.
func (c *Client) Logout() error {
	return c.creds.Clear()
}
