package stubserver

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store
	pageSize  int
}

func newProjectHandler(store *store, pageSize int) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		pageSize:  pageSize,
	}
}

func (h projectHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageFromQuery(r)

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		ids := sortedIDs(h.store.projects)
		items := []map[string]any{}
		for _, id := range paginate(ids, page, h.pageSize) {
			items = append(items, h.store.projectListItem(h.store.projects[id]))
		}

		pagination := buildPagination(len(ids), page, h.pageSize, r.URL.Path)
		h.responder.WriteEnvelope(w, http.StatusOK, "Projects retrieved successfully", items, pagination)
	}
}

func (h projectHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromURL(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		project, ok := h.store.projects[id]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "Project retrieved successfully", h.store.projectDetail(project), nil)
	}
}

func (h projectHandler) create() http.HandlerFunc {
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
		origin, _ := bodyString(body, "project_origin")
		if origin == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("project_origin is required"))
			return
		}
		developerID, ok := bodyInt(body, "developer")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("developer is required"))
			return
		}
		skillIDs, _ := bodyIntSlice(body, "skills")
		if len(skillIDs) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("at least one skill is required"))
			return
		}

		h.store.mu.Lock()
		defer h.store.mu.Unlock()

		if _, ok := h.store.developers[developerID]; !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("developer does not exist"))
			return
		}

		record := &projectRecord{
			ID:          h.store.nextID(),
			DeveloperID: developerID,
			Name:        name,
			Origin:      origin,
			SkillIDs:    skillIDs,
			CreatedAt:   now(),
		}
		record.Description, _ = bodyString(body, "description")
		record.CategoryIDs, _ = bodyIntSlice(body, "project_categories")
		record.TechStack, _ = bodyStringSlice(body, "tech_stack")
		record.RepoLink, _ = bodyString(body, "repo_link")
		record.DocLink, _ = bodyString(body, "doc_link")
		record.PresentationLink, _ = bodyString(body, "presentation_link")
		record.LiveLink, _ = bodyString(body, "live_link")
		h.store.projects[record.ID] = record

		h.logger.Info().Int64("id", record.ID).Int64("developer", developerID).Msg("project created")
		h.responder.WriteEnvelope(w, http.StatusCreated, "Project created successfully", h.store.projectDetail(record), nil)
	}
}

func (h projectHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromURL(r, "projectID")
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

		record, ok := h.store.projects[id]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if name, ok := bodyString(body, "name"); ok {
			record.Name = name
		}
		if description, ok := bodyString(body, "description"); ok {
			record.Description = description
		}
		if origin, ok := bodyString(body, "project_origin"); ok {
			record.Origin = origin
		}
		if developerID, ok := bodyInt(body, "developer"); ok {
			if _, exists := h.store.developers[developerID]; !exists {
				h.responder.WriteError(w, errs.NewBadRequestError("developer does not exist"))
				return
			}
			record.DeveloperID = developerID
		}
		if categories, ok := bodyIntSlice(body, "project_categories"); ok {
			record.CategoryIDs = categories
		}
		if techStack, ok := bodyStringSlice(body, "tech_stack"); ok {
			record.TechStack = techStack
		}
		if skills, ok := bodyIntSlice(body, "skills"); ok && len(skills) > 0 {
			record.SkillIDs = skills
		}
		if link, ok := bodyString(body, "repo_link"); ok {
			record.RepoLink = link
		}
		if link, ok := bodyString(body, "doc_link"); ok {
			record.DocLink = link
		}
		if link, ok := bodyString(body, "presentation_link"); ok {
			record.PresentationLink = link
		}
		if link, ok := bodyString(body, "live_link"); ok {
			record.LiveLink = link
		}

		h.responder.WriteEnvelope(w, http.StatusOK, "Project updated successfully", h.store.projectDetail(record), nil)
	}
}
