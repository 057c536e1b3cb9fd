package wizard

import (
	"context"
	"testing"

	"github.com/rpupo63/devdash-console/controller"
	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/notify"
)

type fakeAPI struct {
	calls     int
	lastDraft map[string]any
	response  map[string]any
	err       error
}

func (f *fakeAPI) CreateProject(ctx context.Context, draft map[string]any) (map[string]any, error) {
	f.calls++
	f.lastDraft = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

// categorySource backs the category controller with canned creations.
type categorySource struct {
	nextID int64
	err    error
}

func (s *categorySource) FetchPage(ctx context.Context, page int) ([]controller.Entity, *models.Pagination, error) {
	return nil, &models.Pagination{Count: 0, PageSize: 10}, nil
}

func (s *categorySource) CreateEntity(ctx context.Context, draft map[string]any) (controller.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	return models.Category{ID: s.nextID, Name: draft["name"].(string)}, nil
}

func (s *categorySource) UpdateEntity(ctx context.Context, id int64, fields map[string]any) (controller.Entity, error) {
	return nil, errs.NewInternalError("unused")
}

type nullSource struct{}

func (nullSource) FetchPage(ctx context.Context, page int) ([]controller.Entity, *models.Pagination, error) {
	return nil, nil, errs.NewInternalError("unused")
}

func (nullSource) CreateEntity(ctx context.Context, draft map[string]any) (controller.Entity, error) {
	return nil, errs.NewInternalError("unused")
}

func (nullSource) UpdateEntity(ctx context.Context, id int64, fields map[string]any) (controller.Entity, error) {
	return nil, errs.NewInternalError("unused")
}

func newTestWizard(api API) (*Wizard, *controller.ListController, *notify.Recorder) {
	rec := &notify.Recorder{}
	categories := controller.New("categories", &categorySource{}, rec)
	projects := controller.New("projects", nullSource{}, rec)
	return New(api, categories, projects, rec), projects, rec
}

func validBasics() Basics {
	return Basics{
		Name:      "Billing Portal",
		Developer: 1,
		Origin:    "internal",
		TechStack: []string{"Go", "React"},
	}
}

// --- SubmitBasics ---

func TestSubmitBasics_AdvancesToSkillSelection(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})

	if err := w.SubmitBasics(validBasics()); err != nil {
		t.Fatalf("SubmitBasics: %v", err)
	}
	if w.State() != StateSkillSelection {
		t.Errorf("State = %v, want skill-selection", w.State())
	}
}

func TestSubmitBasics_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Basics)
	}{
		{"missing name", func(b *Basics) { b.Name = "" }},
		{"missing developer", func(b *Basics) { b.Developer = 0 }},
		{"missing origin", func(b *Basics) { b.Origin = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _, _ := newTestWizard(&fakeAPI{})
			b := validBasics()
			tc.mutate(&b)

			err := w.SubmitBasics(b)
			if !errs.IsMissingRequiredFieldError(err) {
				t.Errorf("err = %v, want missing-required-field", err)
			}
			if w.State() != StateBasics {
				t.Errorf("State = %v, want basics (no advance on invalid form)", w.State())
			}
		})
	}
}

func TestSubmitBasics_RejectsDuplicateTechStackEntries(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	b := validBasics()
	b.TechStack = []string{"Go", "React", "Go"}

	err := w.SubmitBasics(b)
	if !errs.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

// --- Category side-quest ---

func TestCreateCategory_ReturnsToBasicsWithSelection(t *testing.T) {
	w, _, rec := newTestWizard(&fakeAPI{})

	if err := w.BeginCategoryCreation(); err != nil {
		t.Fatalf("BeginCategoryCreation: %v", err)
	}
	if w.State() != StateCategoryCreation {
		t.Fatalf("State = %v, want category-creation", w.State())
	}

	category, err := w.CreateCategory(context.Background(), map[string]any{"name": "Internal Tooling"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if w.State() != StateBasics {
		t.Errorf("State = %v, want basics after side-quest", w.State())
	}
	selected := w.Basics().Categories
	if len(selected) != 1 || selected[0] != category.ID {
		t.Errorf("Categories = %v, want [%d] (new category auto-selected)", selected, category.ID)
	}
	if len(rec.Successes) == 0 {
		t.Error("no success notification after category creation")
	}
}

func TestCreateCategory_FailureStaysInSideQuest(t *testing.T) {
	rec := &notify.Recorder{}
	categories := controller.New("categories", &categorySource{err: errs.NewFetchError(400, "name taken")}, rec)
	projects := controller.New("projects", nullSource{}, rec)
	w := New(&fakeAPI{}, categories, projects, rec)

	w.BeginCategoryCreation()
	_, err := w.CreateCategory(context.Background(), map[string]any{"name": "Internal Tooling"})
	if err == nil {
		t.Fatal("CreateCategory succeeded, want error")
	}
	if w.State() != StateCategoryCreation {
		t.Errorf("State = %v, want category-creation retained for retry", w.State())
	}
	if len(w.Basics().Categories) != 0 {
		t.Errorf("Categories = %v, want none selected on failure", w.Basics().Categories)
	}
}

func TestCancelCategoryCreation_DiscardsNothingElse(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})

	w.BeginCategoryCreation()
	w.CancelCategoryCreation()
	if w.State() != StateBasics {
		t.Errorf("State = %v, want basics", w.State())
	}
	if len(w.Basics().Categories) != 0 {
		t.Errorf("Categories = %v, want empty", w.Basics().Categories)
	}
}

func TestBeginCategoryCreation_OnlyFromBasics(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	w.SubmitBasics(validBasics())

	if err := w.BeginCategoryCreation(); err == nil {
		t.Error("BeginCategoryCreation from skill selection succeeded, want error")
	}
}

// --- ToggleSkill ---

func TestToggleSkill_AddsAndRemoves(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})

	w.ToggleSkill(3)
	w.ToggleSkill(5)
	w.ToggleSkill(3)
	selected := w.SelectedSkills()
	if len(selected) != 1 || selected[0] != 5 {
		t.Errorf("SelectedSkills = %v, want [5]", selected)
	}
}

// --- Submit ---

func TestSubmit_NoSkillsWarnsWithoutNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	w, _, rec := newTestWizard(api)
	w.SubmitBasics(validBasics())

	_, err := w.Submit(context.Background())
	if !errs.IsNoSkillsSelectedError(err) {
		t.Fatalf("err = %v, want no-skills-selected", err)
	}
	if api.calls != 0 {
		t.Errorf("api calls = %d, want 0 (precondition checked before network)", api.calls)
	}
	if len(rec.Warnings) != 1 {
		t.Errorf("len(Warnings) = %d, want 1", len(rec.Warnings))
	}
	if w.State() != StateSkillSelection {
		t.Errorf("State = %v, want skill-selection retained", w.State())
	}
}

func TestSubmit_SinglePostCombinesBasicsAndSkills(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"id": float64(11), "name": "Billing Portal", "project_origin": "internal",
	}}
	w, projects, _ := newTestWizard(api)

	b := validBasics()
	b.Description = "Invoices"
	b.Categories = []int64{4}
	if err := w.SubmitBasics(b); err != nil {
		t.Fatalf("SubmitBasics: %v", err)
	}
	w.ToggleSkill(3)
	w.ToggleSkill(5)

	project, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("api calls = %d, want exactly 1", api.calls)
	}

	draft := api.lastDraft
	if draft["name"] != "Billing Portal" {
		t.Errorf("draft name = %v", draft["name"])
	}
	if draft["project_origin"] != "internal" {
		t.Errorf("draft project_origin = %v", draft["project_origin"])
	}
	if draft["description"] != "Invoices" {
		t.Errorf("draft description = %v", draft["description"])
	}
	skills, ok := draft["skills"].([]int64)
	if !ok || len(skills) != 2 {
		t.Fatalf("draft skills = %v, want two ids", draft["skills"])
	}
	if w.State() != StateSubmitted {
		t.Errorf("State = %v, want submitted", w.State())
	}
	if project.ID != 11 {
		t.Errorf("project.ID = %d, want 11", project.ID)
	}
	items := projects.Items()
	if len(items) != 1 || items[0].EntityID() != 11 {
		t.Errorf("projects list = %v, want the new project appended", items)
	}
}

func TestSubmit_OmitsEmptyOptionalFields(t *testing.T) {
	api := &fakeAPI{response: map[string]any{"id": float64(1), "name": "X"}}
	w, _, _ := newTestWizard(api)
	w.SubmitBasics(validBasics())
	w.ToggleSkill(3)

	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	for _, key := range []string{"description", "repo_link", "doc_link", "presentation_link", "live_link"} {
		if _, present := api.lastDraft[key]; present {
			t.Errorf("draft contains empty optional field %q", key)
		}
	}
}

func TestSubmit_FailureRetainsStateForRetry(t *testing.T) {
	api := &fakeAPI{err: errs.NewServerError(500, "boom")}
	w, projects, _ := newTestWizard(api)
	w.SubmitBasics(validBasics())
	w.ToggleSkill(3)

	if _, err := w.Submit(context.Background()); err == nil {
		t.Fatal("Submit succeeded, want error")
	}
	if w.State() != StateSkillSelection {
		t.Errorf("State = %v, want skill-selection retained", w.State())
	}
	if len(projects.Items()) != 0 {
		t.Error("project appended despite failed submit")
	}

	// Retry without re-entering anything.
	api.err = nil
	api.response = map[string]any{"id": float64(7), "name": "Billing Portal"}
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if api.calls != 2 {
		t.Errorf("api calls = %d, want 2", api.calls)
	}
	if len(projects.Items()) != 1 {
		t.Error("project not appended after successful retry")
	}
}

func TestSubmit_OnlyFromSkillSelection(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})

	_, err := w.Submit(context.Background())
	if !errs.IsValidation(err) {
		t.Errorf("err = %v, want validation error from basics state", err)
	}
}

// --- Cancel ---

func TestCancel_DiscardsAllState(t *testing.T) {
	w, _, _ := newTestWizard(&fakeAPI{})
	w.SubmitBasics(validBasics())
	w.ToggleSkill(3)

	w.Cancel()
	if w.State() != StateBasics {
		t.Errorf("State = %v, want basics", w.State())
	}
	if w.Basics().Name != "" {
		t.Error("basics draft survived cancel")
	}
	if len(w.SelectedSkills()) != 0 {
		t.Error("skill selection survived cancel")
	}
}
