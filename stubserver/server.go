package stubserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/config"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(fixtures Fixtures) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	handler, err := NewHandler(fixtures, WithConfig(c))
	if err != nil {
		return Server{}, err
	}

	readTimeout := config.GetDuration(c, "READ_TIMEOUT_SECONDS", 180*time.Second)
	writeTimeout := config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", 180*time.Second)
	idleTimeout := config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", 180*time.Second)

	server := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type options struct {
	config map[string]string
}

type Option func(*options)

func WithConfig(c map[string]string) Option {
	return func(o *options) {
		o.config = c
	}
}

// NewHandler seeds a fresh store from the fixtures and builds the routed
// contract surface. Exported separately from NewServer so tests can mount
// it on an httptest server.
func NewHandler(fixtures Fixtures, opts ...Option) (http.Handler, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := newStore()
	if err := store.seed(fixtures); err != nil {
		return nil, err
	}

	secret := config.GetString(o.config, "STUB_JWT_SECRET", "devdash-stub-secret")
	pageSize := config.GetInt(o.config, "STUB_PAGE_SIZE", 10)
	issuer := newTokenIssuer(secret)

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(requestIDMiddleware)
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	acceptedOrigins := strings.Split(config.GetString(o.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	handlers := initializeHandlers(store, issuer, pageSize)
	setupRoutes(chiRouter, handlers, newAuthMiddleware(issuer))

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Stub server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
