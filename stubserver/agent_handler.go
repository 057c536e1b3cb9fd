package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
)

const agentModel = "devdash-analyst-stub"

// agentHandler serves deterministic stand-ins for the AI endpoints. The
// analysis is derived from the fixture data so end-to-end tests get stable
// output without a model behind them.
type agentHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store
}

func newAgentHandler(store *store) agentHandler {
	logger := log.With().Str("handlerName", "agentHandler").Logger()

	return agentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// writeJSON emits a bare (non-enveloped) payload; the agent endpoints
// predate the envelope convention.
func (h agentHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("error writing agent response")
	}
}

func (h agentHandler) query() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		query, _ := bodyString(body, "query")
		if strings.TrimSpace(query) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("query is required"))
			return
		}

		h.store.mu.Lock()
		developers := len(h.store.developers)
		h.store.mu.Unlock()

		h.writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"response": fmt.Sprintf("Considering %d developers on record: %s", developers, query),
			"model":    agentModel,
		})
	}
}

func (h agentHandler) analyzeProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("expected multipart form data"))
			return
		}

		projectName := r.FormValue("project_name")
		if projectName == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("project_name is required"))
			return
		}

		if _, header, err := r.FormFile("project_file"); err == nil {
			ext := strings.ToLower(filepath.Ext(header.Filename))
			if ext != ".pdf" && ext != ".docx" {
				h.responder.WriteError(w, errs.NewBadRequestError("project_file must be a PDF or DOCX document"))
				return
			}
		}

		requiredSkills := splitCommaField(r.FormValue("required_skills"))
		categories := splitCommaField(r.FormValue("project_categories"))

		h.store.mu.Lock()
		if len(requiredSkills) == 0 {
			for _, id := range sortedIDs(h.store.skills) {
				requiredSkills = append(requiredSkills, h.store.skills[id].Name)
				if len(requiredSkills) == 3 {
					break
				}
			}
		}
		if len(categories) == 0 {
			for _, id := range sortedIDs(h.store.categories) {
				categories = append(categories, h.store.categories[id].Name)
			}
		}
		analyzed := len(h.store.developers)
		h.store.mu.Unlock()

		h.writeJSON(w, http.StatusOK, map[string]any{
			"success":                   true,
			"required_skills":           requiredSkills,
			"project_categories":        categories,
			"total_developers_analyzed": analyzed,
			"analysis":                  fmt.Sprintf("Analyzed %q against %d developers.", projectName, analyzed),
			"model":                     agentModel,
		})
	}
}

func splitCommaField(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
