package stubserver

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
)

type skillAreaHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store
	pageSize  int
}

func newSkillAreaHandler(store *store, pageSize int) skillAreaHandler {
	logger := log.With().Str("handlerName", "skillAreaHandler").Logger()

	return skillAreaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		pageSize:  pageSize,
	}
}

func (h skillAreaHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageFromQuery(r)

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		ids := sortedIDs(h.store.skillAreas)
		items := []map[string]any{}
		for _, id := range paginate(ids, page, h.pageSize) {
			items = append(items, skillAreaBase(h.store.skillAreas[id]))
		}

		pagination := buildPagination(len(ids), page, h.pageSize, r.URL.Path)
		h.responder.WriteEnvelope(w, http.StatusOK, "Skill areas retrieved successfully", items, pagination)
	}
}

func (h skillAreaHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromURL(r, "skillAreaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		area, ok := h.store.skillAreas[id]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill area not found"))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "Skill area retrieved successfully", h.store.skillAreaDetail(area), nil)
	}
}

// create accepts skills either as a comma-separated string (the form the
// admin UI has always sent) or as a JSON array of names.
func (h skillAreaHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name, _ := bodyString(body, "name")
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		var skillNames []string
		if commaSeparated, ok := bodyString(body, "skills"); ok {
			for _, part := range strings.Split(commaSeparated, ",") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					skillNames = append(skillNames, trimmed)
				}
			}
		} else if list, ok := bodyStringSlice(body, "skills"); ok {
			skillNames = list
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		area := &skillAreaRecord{
			ID:        h.store.nextID(),
			Name:      name,
			CreatedAt: now(),
		}
		h.store.skillAreas[area.ID] = area
		for _, skillName := range skillNames {
			skill := &skillRecord{
				ID:     h.store.nextID(),
				Name:   skillName,
				AreaID: area.ID,
			}
			h.store.skills[skill.ID] = skill
		}

		h.logger.Info().Int64("id", area.ID).Int("skills", len(skillNames)).Msg("skill area created")
		h.responder.WriteEnvelope(w, http.StatusCreated, "Skill area created successfully", h.store.skillAreaDetail(area), nil)
	}
}
