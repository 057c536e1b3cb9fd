// Package notify is the toast-style notification sink. Every failure
// produces exactly one notification; validation errors stay on the form and
// never reach the sink.
package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// Console writes notifications through a zerolog logger.
type Console struct {
	logger zerolog.Logger
}

func NewConsole(logger zerolog.Logger) Console {
	return Console{logger: logger.With().Str("component", "notify").Logger()}
}

func (c Console) Success(msg string) {
	c.logger.Info().Str("kind", "success").Msg(msg)
}

func (c Console) Warn(msg string) {
	c.logger.Warn().Str("kind", "warning").Msg(msg)
}

func (c Console) Error(msg string) {
	c.logger.Error().Str("kind", "error").Msg(msg)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Warnings  []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}
