package stubserver

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
)

type categoryHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store
	pageSize  int
}

func newCategoryHandler(store *store, pageSize int) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		pageSize:  pageSize,
	}
}

func (h categoryHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageFromQuery(r)

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		ids := sortedIDs(h.store.categories)
		items := []map[string]any{}
		for _, id := range paginate(ids, page, h.pageSize) {
			items = append(items, h.store.categoryView(h.store.categories[id]))
		}

		pagination := buildPagination(len(ids), page, h.pageSize, r.URL.Path)
		h.responder.WriteEnvelope(w, http.StatusOK, "Project categories retrieved successfully", items, pagination)
	}
}

func (h categoryHandler) create() http.HandlerFunc {
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

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		record := &categoryRecord{
			ID:   h.store.nextID(),
			Name: name,
		}
		record.Description, _ = bodyString(body, "description")
		if useCases, ok := bodyStringSlice(body, "use_cases"); ok {
			record.UseCases = useCases
		} else {
			record.UseCases = []string{}
		}
		record.SkillIDs, _ = bodyIntSlice(body, "skills")
		h.store.categories[record.ID] = record

		h.logger.Info().Int64("id", record.ID).Msg("project category created")
		h.responder.WriteEnvelope(w, http.StatusCreated, "Project category created successfully", h.store.categoryView(record), nil)
	}
}

// update keeps the backend's asymmetric semantics: description REPLACES,
// use_cases APPENDS to the existing list. Clients must not resend the full
// use-case list or it will be duplicated.
func (h categoryHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromURL(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		body, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		record, ok := h.store.categories[id]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Project category not found"))
			return
		}

		if name, ok := bodyString(body, "name"); ok {
			record.Name = name
		}
		if description, ok := bodyString(body, "description"); ok {
			record.Description = description
		}
		if useCases, ok := bodyStringSlice(body, "use_cases"); ok {
			record.UseCases = append(record.UseCases, useCases...)
		}
		if skills, ok := bodyIntSlice(body, "skills"); ok {
			record.SkillIDs = skills
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "Project category updated successfully", h.store.categoryView(record), nil)
	}
}
