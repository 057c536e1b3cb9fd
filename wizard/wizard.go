// Package wizard drives the multi-step project creation flow:
//
//	Basics -> (optional CategoryCreation side-quest) -> SkillSelection -> Submitted
//
// The flow is linear with one level of side-quest nesting. State survives
// failed network transitions so the user can retry without re-entering
// anything; it is discarded only on success or explicit cancel, and nothing
// partial ever reaches the server before the final submission.
package wizard

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/controller"
	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/normalize"
	"github.com/rpupo63/devdash-console/notify"
)

type State int

const (
	StateBasics State = iota
	StateCategoryCreation
	StateSkillSelection
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateBasics:
		return "basics"
	case StateCategoryCreation:
		return "category-creation"
	case StateSkillSelection:
		return "skill-selection"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Basics is the first step's form data.
type Basics struct {
	Name             string
	Developer        int64
	Description      string
	Origin           string
	TechStack        []string
	Categories       []int64
	RepoLink         string
	DocLink          string
	PresentationLink string
	LiveLink         string
}

// API is the single raw create call the final submission needs. The
// category side-quest goes through the category list controller instead, so
// the new category lands in the selectable set the usual way.
type API interface {
	CreateProject(ctx context.Context, draft map[string]any) (map[string]any, error)
}

type Wizard struct {
	api        API
	categories *controller.ListController
	projects   *controller.ListController
	notifier   notify.Notifier
	logger     zerolog.Logger

	state          State
	returnTo       State
	basics         Basics
	selectedSkills []int64
}

func New(api API, categories, projects *controller.ListController, notifier notify.Notifier) *Wizard {
	logger := log.With().Str("component", "projectWizard").Logger()

	return &Wizard{
		api:        api,
		categories: categories,
		projects:   projects,
		notifier:   notifier,
		logger:     logger,
		state:      StateBasics,
	}
}

func (w *Wizard) State() State            { return w.state }
func (w *Wizard) Basics() Basics          { return w.basics }
func (w *Wizard) SelectedSkills() []int64 { return append([]int64(nil), w.selectedSkills...) }

// SubmitBasics validates the first step and carries the draft forward in
// memory. Nothing is sent to the server here.
func (w *Wizard) SubmitBasics(b Basics) error {
	if w.state != StateBasics {
		return errs.NewInvalidFieldError("state", "basics can only be submitted from the basics step")
	}
	if b.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if b.Developer == 0 {
		return errs.NewMissingRequiredFieldError("developer")
	}
	if b.Origin == "" {
		return errs.NewMissingRequiredFieldError("project_origin")
	}
	if dup, found := firstDuplicate(b.TechStack); found {
		return errs.NewDuplicateEntryError("tech_stack", dup)
	}

	w.basics = b
	w.state = StateSkillSelection
	return nil
}

// BeginCategoryCreation enters the inline category side-quest. Only one
// level of nesting is supported, and only from the basics step.
func (w *Wizard) BeginCategoryCreation() error {
	if w.state != StateBasics {
		return errs.NewInvalidFieldError("state", "category creation is only reachable from the basics step")
	}
	w.returnTo = w.state
	w.state = StateCategoryCreation
	return nil
}

// CreateCategory runs the side-quest's POST through the category list
// controller. On success the new category joins the selectable set, is
// auto-selected, and control returns to the basics step with everything else
// intact. On failure the wizard stays put so the user can retry.
func (w *Wizard) CreateCategory(ctx context.Context, draft map[string]any) (models.Category, error) {
	if w.state != StateCategoryCreation {
		return models.Category{}, errs.NewInvalidFieldError("state", "not in category creation")
	}

	created, err := w.categories.Create(ctx, draft)
	if err != nil {
		w.logger.Warn().Err(err).Msg("inline category creation failed")
		return models.Category{}, err
	}

	category, ok := created.(models.Category)
	if !ok {
		return models.Category{}, errs.NewInternalError("category controller returned an unexpected entity type")
	}

	w.basics.Categories = append(w.basics.Categories, category.ID)
	w.state = w.returnTo
	w.notifier.Success("Category \"" + category.Name + "\" created and selected.")
	return category, nil
}

// CancelCategoryCreation abandons the side-quest without touching the
// basics draft.
func (w *Wizard) CancelCategoryCreation() {
	if w.state == StateCategoryCreation {
		w.state = w.returnTo
	}
}

// ToggleSkill adds or removes a skill from the selection.
func (w *Wizard) ToggleSkill(id int64) {
	for i, selected := range w.selectedSkills {
		if selected == id {
			w.selectedSkills = append(w.selectedSkills[:i], w.selectedSkills[i+1:]...)
			return
		}
	}
	w.selectedSkills = append(w.selectedSkills, id)
}

// Submit performs the single POST combining the basics draft and the chosen
// skills. At least one skill is a hard precondition, checked before any
// network call. On failure the wizard keeps its state for a retry; on
// success it tears down into Submitted and the new project is appended to
// the parent list.
func (w *Wizard) Submit(ctx context.Context) (models.Project, error) {
	if w.state != StateSkillSelection {
		return models.Project{}, errs.NewInvalidFieldError("state", "submission is only possible from skill selection")
	}
	if len(w.selectedSkills) == 0 {
		w.notifier.Warn("Select at least one skill before creating the project.")
		return models.Project{}, errs.NewNoSkillsSelectedError()
	}

	raw, err := w.api.CreateProject(ctx, w.draft())
	if err != nil {
		w.logger.Warn().Err(err).Msg("project creation failed, wizard state retained")
		return models.Project{}, err
	}

	project := normalize.Project(raw)
	w.projects.Append(project)
	w.state = StateSubmitted
	w.notifier.Success("Project \"" + project.Name + "\" created.")
	return project, nil
}

// Cancel aborts the wizard and discards all in-progress state. No draft
// persistence.
func (w *Wizard) Cancel() {
	w.basics = Basics{}
	w.selectedSkills = nil
	w.returnTo = StateBasics
	w.state = StateBasics
}

// draft assembles the one creation payload. Optional links are omitted when
// empty so the server does not store empty strings.
func (w *Wizard) draft() map[string]any {
	categories := w.basics.Categories
	if categories == nil {
		categories = []int64{}
	}
	techStack := w.basics.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	payload := map[string]any{
		"developer":          w.basics.Developer,
		"name":               w.basics.Name,
		"project_categories": categories,
		"tech_stack":         techStack,
		"project_origin":     w.basics.Origin,
		"skills":             w.selectedSkills,
	}
	if w.basics.Description != "" {
		payload["description"] = w.basics.Description
	}
	for key, link := range map[string]string{
		"repo_link":         w.basics.RepoLink,
		"doc_link":          w.basics.DocLink,
		"presentation_link": w.basics.PresentationLink,
		"live_link":         w.basics.LiveLink,
	} {
		if link != "" {
			payload[key] = link
		}
	}
	return payload
}

func firstDuplicate(entries []string) (string, bool) {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			return entry, true
		}
		seen[entry] = struct{}{}
	}
	return "", false
}
