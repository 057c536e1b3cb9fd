package stubserver

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store
	issuer    tokenIssuer
}

func newAuthHandler(store *store, issuer tokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		issuer:    issuer,
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		email, _ := bodyString(body, "email")
		password, _ := bodyString(body, "password")
		if email == "" || password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		h.store.mu.Lock()
		ok := h.store.checkAdmin(email, password)
		h.store.mu.Unlock()
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		token, err := h.issuer.Generate(email)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue token", err))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "Login successful", map[string]any{"token": token}, nil)
	}
}
