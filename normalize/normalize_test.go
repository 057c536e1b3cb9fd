package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, payload string) map[string]any {
	t.Helper()
	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return raw
}

// --- Skill ---

func TestSkill_LegacyKeys(t *testing.T) {
	raw := decode(t, `{"skill_id": 7, "skill_name": "React", "skill_area": 2}`)

	skill := Skill(raw)
	if skill.ID != 7 {
		t.Errorf("ID = %d, want 7", skill.ID)
	}
	if skill.Name != "React" {
		t.Errorf("Name = %q, want %q", skill.Name, "React")
	}
	if skill.SkillArea != 2 {
		t.Errorf("SkillArea = %d, want 2", skill.SkillArea)
	}
}

func TestSkill_PrefixedAliasWinsOverPlain(t *testing.T) {
	// Both conventions present with different values: the prefixed key is
	// higher priority and must win silently.
	raw := decode(t, `{"skill_id": 7, "id": 99, "skill_name": "React", "name": "Wrong"}`)

	skill := Skill(raw)
	if skill.ID != 7 {
		t.Errorf("ID = %d, want 7 (skill_id must shadow id)", skill.ID)
	}
	if skill.Name != "React" {
		t.Errorf("Name = %q, want %q (skill_name must shadow name)", skill.Name, "React")
	}
}

func TestSkill_CanonicalInputIsNoOp(t *testing.T) {
	raw := decode(t, `{"id": 7, "name": "React", "skill_area": 2}`)

	first := Skill(raw)
	second := Skill(decode(t, `{"id": 7, "name": "React", "skill_area": 2}`))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent: %+v vs %+v", first, second)
	}
	if first.ID != 7 || first.Name != "React" {
		t.Errorf("canonical input mangled: %+v", first)
	}
}

// --- SkillArea ---

func TestSkillArea_GroupedShape(t *testing.T) {
	raw := decode(t, `{
		"skill_area_id": 3,
		"skill_area_name": "Web Development",
		"skills": [{"skill_id": 1, "skill_name": "React"}, {"skill_id": 2, "skill_name": "Django"}]
	}`)

	area := SkillArea(raw)
	if area.ID != 3 {
		t.Errorf("ID = %d, want 3", area.ID)
	}
	if area.Name != "Web Development" {
		t.Errorf("Name = %q, want %q", area.Name, "Web Development")
	}
	if len(area.Skills) != 2 {
		t.Fatalf("len(Skills) = %d, want 2", len(area.Skills))
	}
	if area.Skills[0].Name != "React" || area.Skills[1].Name != "Django" {
		t.Errorf("Skills = %+v", area.Skills)
	}
}

func TestSkillArea_MissingSkillsDefaultsToEmptySlice(t *testing.T) {
	area := SkillArea(decode(t, `{"id": 3, "name": "DevOps"}`))
	if area.Skills == nil {
		t.Fatal("Skills = nil, want empty slice")
	}
	if len(area.Skills) != 0 {
		t.Errorf("len(Skills) = %d, want 0", len(area.Skills))
	}
}

// --- Developer ---

func TestDeveloper_OmittedCollectionsAreEmptySlices(t *testing.T) {
	// The list endpoint omits skills and projects entirely.
	dev := Developer(decode(t, `{"id": 1, "name": "Amina Diallo", "email": "amina@example.com", "role": "Backend Engineer"}`))

	if dev.Skills == nil {
		t.Error("Skills = nil, want empty slice")
	}
	if dev.Projects == nil {
		t.Error("Projects = nil, want empty slice")
	}
	if dev.ID != 1 || dev.Name != "Amina Diallo" {
		t.Errorf("scalars mangled: %+v", dev)
	}
}

func TestDeveloper_DetailShapeWithLegacyEmbeds(t *testing.T) {
	raw := decode(t, `{
		"id": 1,
		"name": "Amina Diallo",
		"email": "amina@example.com",
		"role": "Backend Engineer",
		"industry_experience": 6,
		"is_available": true,
		"skills": [
			{"skill_area_id": 3, "skill_area_name": "Web Development",
			 "skills": [{"skill_id": 1, "skill_name": "React"}]}
		],
		"projects": [
			{"project_id": 11, "project_name": "Billing Portal",
			 "project_description": "Invoices", "project_tech_stack": ["Go", "React"],
			 "project_origin": "internal"}
		]
	}`)

	dev := Developer(raw)
	if dev.IndustryExperience != 6 {
		t.Errorf("IndustryExperience = %d, want 6", dev.IndustryExperience)
	}
	if !dev.IsAvailable {
		t.Error("IsAvailable = false, want true")
	}
	if len(dev.Skills) != 1 || dev.Skills[0].Name != "Web Development" {
		t.Fatalf("Skills = %+v", dev.Skills)
	}
	if len(dev.Skills[0].Skills) != 1 || dev.Skills[0].Skills[0].Name != "React" {
		t.Errorf("nested skills = %+v", dev.Skills[0].Skills)
	}
	if len(dev.Projects) != 1 {
		t.Fatalf("len(Projects) = %d, want 1", len(dev.Projects))
	}
	p := dev.Projects[0]
	if p.ID != 11 || p.Name != "Billing Portal" || p.Origin != "internal" {
		t.Errorf("project summary = %+v", p)
	}
	if !reflect.DeepEqual(p.TechStack, []string{"Go", "React"}) {
		t.Errorf("TechStack = %v, want [Go React]", p.TechStack)
	}
}

func TestDeveloper_IsAvailableNotDefaultedOnRead(t *testing.T) {
	// The creation-time default lives in the draft builder; a read with the
	// field absent stays false.
	dev := Developer(decode(t, `{"id": 2, "name": "Jonas Keller"}`))
	if dev.IsAvailable {
		t.Error("IsAvailable = true, want false when field absent")
	}
}

// --- Project ---

func TestProject_LegacyListShape(t *testing.T) {
	raw := decode(t, `{
		"project_id": 11,
		"project_name": "Billing Portal",
		"project_description": "Invoices",
		"project_tech_stack": ["Go"],
		"project_origin": "internal",
		"developer": 1,
		"developer_name": "Amina Diallo"
	}`)

	project := Project(raw)
	if project.ID != 11 {
		t.Errorf("ID = %d, want 11", project.ID)
	}
	if project.Name != "Billing Portal" {
		t.Errorf("Name = %q, want %q", project.Name, "Billing Portal")
	}
	if project.Origin != "internal" {
		t.Errorf("Origin = %q, want %q", project.Origin, "internal")
	}
	if project.Developer != 1 || project.DeveloperName != "Amina Diallo" {
		t.Errorf("developer fields = %d %q", project.Developer, project.DeveloperName)
	}
}

func TestProject_CategoriesFromIDArray(t *testing.T) {
	project := Project(decode(t, `{"id": 11, "name": "X", "project_categories": [4, 9]}`))
	if !reflect.DeepEqual(project.Categories, []int64{4, 9}) {
		t.Errorf("Categories = %v, want [4 9]", project.Categories)
	}
}

func TestProject_CategoriesFromEmbeddedSummaries(t *testing.T) {
	// The detail view embeds category objects instead of bare ids.
	raw := decode(t, `{
		"id": 11, "name": "X",
		"project_categories": [
			{"category_id": 4, "category_name": "Internal Tooling"},
			{"category_id": 9, "category_name": "ML Prototypes"}
		]
	}`)

	project := Project(raw)
	if !reflect.DeepEqual(project.Categories, []int64{4, 9}) {
		t.Errorf("Categories = %v, want [4 9]", project.Categories)
	}
}

func TestProject_MissingCollectionsAreEmptySlices(t *testing.T) {
	project := Project(decode(t, `{"id": 11, "name": "X"}`))
	if project.Categories == nil || project.TechStack == nil || project.Skills == nil {
		t.Errorf("nil collection: categories=%v tech=%v skills=%v",
			project.Categories, project.TechStack, project.Skills)
	}
}

// --- Category ---

func TestCategory_LegacyKeysAndUseCases(t *testing.T) {
	raw := decode(t, `{
		"category_id": 4,
		"category_name": "Internal Tooling",
		"description": "Back-office systems",
		"use_cases": ["dashboards", "reporting"]
	}`)

	category := Category(raw)
	if category.ID != 4 {
		t.Errorf("ID = %d, want 4", category.ID)
	}
	if category.Name != "Internal Tooling" {
		t.Errorf("Name = %q, want %q", category.Name, "Internal Tooling")
	}
	if !reflect.DeepEqual(category.UseCases, []string{"dashboards", "reporting"}) {
		t.Errorf("UseCases = %v", category.UseCases)
	}
}

func TestCategory_MissingUseCasesIsEmptySlice(t *testing.T) {
	category := Category(decode(t, `{"id": 4, "name": "Internal Tooling"}`))
	if category.UseCases == nil {
		t.Error("UseCases = nil, want empty slice")
	}
}

// --- asInt64 ---

func TestAsInt64_NumericVariants(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{float64(7), 7},
		{int64(7), 7},
		{int(7), 7},
		{json.Number("7"), 7},
		{"7", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
