package stubserver

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
)

type developerHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store
	pageSize  int
}

func newDeveloperHandler(store *store, pageSize int) developerHandler {
	logger := log.With().Str("handlerName", "developerHandler").Logger()

	return developerHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		pageSize:  pageSize,
	}
}

func (h developerHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageFromQuery(r)

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		ids := sortedIDs(h.store.developers)
		items := []map[string]any{}
		for _, id := range paginate(ids, page, h.pageSize) {
			// The list view omits skills and projects entirely; only the
			// detail endpoint carries them.
			items = append(items, developerBase(h.store.developers[id]))
		}

		pagination := buildPagination(len(ids), page, h.pageSize, r.URL.Path)
		h.responder.WriteEnvelope(w, http.StatusOK, "Developers retrieved successfully", items, pagination)
	}
}

func (h developerHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromURL(r, "developerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		developer, ok := h.store.developers[id]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Developer not found"))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "Developer retrieved successfully", h.store.developerDetail(developer), nil)
	}
}

func (h developerHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name, _ := bodyString(body, "name")
		email, _ := bodyString(body, "email")
		if name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}
		if email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email is required"))
			return
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		record := &developerRecord{
			ID:          h.store.nextID(),
			Name:        name,
			Email:       email,
			IsAvailable: true,
			CreatedAt:   now(),
			LastUpdated: now(),
		}
		record.Role, _ = bodyString(body, "role")
		record.GraduationDate, _ = bodyString(body, "graduation_date")
		record.EmploymentStartDate, _ = bodyString(body, "employment_start_date")
		if experience, ok := bodyInt(body, "industry_experience"); ok {
			record.IndustryExperience = int(experience)
		}
		if available, ok := bodyBool(body, "is_available"); ok {
			record.IsAvailable = available
		}
		h.store.developers[record.ID] = record

		h.logger.Info().Int64("id", record.ID).Msg("developer created")
		h.responder.WriteEnvelope(w, http.StatusCreated, "Developer created successfully", developerBase(record), nil)
	}
}

// update merges only the submitted fields; everything absent from the body
// is left untouched, which is what makes the console's dirty-field PUTs safe.
func (h developerHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromURL(r, "developerID")
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

		record, ok := h.store.developers[id]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Developer not found"))
			return
		}

		if name, ok := bodyString(body, "name"); ok {
			record.Name = name
		}
		if email, ok := bodyString(body, "email"); ok {
			record.Email = email
		}
		if role, ok := bodyString(body, "role"); ok {
			record.Role = role
		}
		if date, ok := bodyString(body, "graduation_date"); ok {
			record.GraduationDate = date
		}
		if date, ok := bodyString(body, "employment_start_date"); ok {
			record.EmploymentStartDate = date
		}
		if experience, ok := bodyInt(body, "industry_experience"); ok {
			record.IndustryExperience = int(experience)
		}
		if available, ok := bodyBool(body, "is_available"); ok {
			record.IsAvailable = available
		}
		record.LastUpdated = now()

		h.responder.WriteEnvelope(w, http.StatusOK, "Developer updated successfully", developerBase(record), nil)
	}
}
