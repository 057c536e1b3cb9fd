package normalize

import (
	"github.com/rpupo63/devdash-console/models"
)

// Skill normalizes one skill object.
func Skill(raw map[string]any) models.Skill {
	return models.Skill{
		ID:        intField(raw, skillAliases, "id"),
		Name:      stringField(raw, skillAliases, "name"),
		SkillArea: intField(raw, skillAliases, "skill_area"),
	}
}

// SkillArea normalizes a skill-area object, either the top-level detail
// shape ({id, name, skills}) or the grouped view a developer/project detail
// embeds ({skill_area_id, skill_area_name, skills}).
func SkillArea(raw map[string]any) models.SkillArea {
	area := models.SkillArea{
		ID:        intField(raw, skillAreaAliases, "id"),
		Name:      stringField(raw, skillAreaAliases, "name"),
		CreatedAt: stringField(raw, nil, "created_at"),
		Skills:    []models.Skill{},
	}
	if skills, ok := raw["skills"]; ok {
		for _, s := range mapSlice(skills) {
			area.Skills = append(area.Skills, Skill(s))
		}
	}
	return area
}

// SkillGroups normalizes the grouped-by-area skills collection carried by
// developer, project and category detail responses.
func SkillGroups(v any) []models.SkillArea {
	groups := []models.SkillArea{}
	for _, g := range mapSlice(v) {
		groups = append(groups, SkillArea(g))
	}
	return groups
}

// Developer normalizes a developer object. Skills and Projects come back as
// empty slices when the server omits them; is_available is taken as-is (its
// creation-time default is applied by the draft builder, not here).
func Developer(raw map[string]any) models.Developer {
	return models.Developer{
		ID:                  intField(raw, nil, "id"),
		Name:                stringField(raw, nil, "name"),
		Email:               stringField(raw, nil, "email"),
		Role:                stringField(raw, nil, "role"),
		GraduationDate:      stringField(raw, nil, "graduation_date"),
		IndustryExperience:  int(intField(raw, nil, "industry_experience")),
		EmploymentStartDate: stringField(raw, nil, "employment_start_date"),
		IsAvailable:         boolField(raw, nil, "is_available"),
		CreatedAt:           stringField(raw, nil, "created_at"),
		LastUpdated:         stringField(raw, nil, "last_updated"),
		Skills:              SkillGroups(raw["skills"]),
		Projects:            projectSummaries(raw["projects"]),
	}
}

func projectSummaries(v any) []models.ProjectSummary {
	summaries := []models.ProjectSummary{}
	for _, p := range mapSlice(v) {
		summaries = append(summaries, models.ProjectSummary{
			ID:          intField(p, projectAliases, "id"),
			Name:        stringField(p, projectAliases, "name"),
			Description: stringField(p, projectAliases, "description"),
			TechStack:   techStack(p),
			Origin:      stringField(p, projectAliases, "origin"),
		})
	}
	return summaries
}

func techStack(raw map[string]any) []string {
	v, ok := resolve(raw, projectAliases, "tech_stack")
	if !ok {
		return []string{}
	}
	return stringSlice(v)
}

// Project normalizes a project object. project_categories may arrive as a
// plain id array or, on the detail view, as embedded category summaries;
// both collapse to ids.
func Project(raw map[string]any) models.Project {
	return models.Project{
		ID:               intField(raw, projectAliases, "id"),
		Developer:        intField(raw, nil, "developer"),
		DeveloperName:    stringField(raw, nil, "developer_name"),
		Name:             stringField(raw, projectAliases, "name"),
		Description:      stringField(raw, projectAliases, "description"),
		Categories:       categoryIDs(raw["project_categories"]),
		TechStack:        techStack(raw),
		Origin:           stringField(raw, projectAliases, "origin"),
		Skills:           SkillGroups(raw["skills"]),
		RepoLink:         stringField(raw, nil, "repo_link"),
		DocLink:          stringField(raw, nil, "doc_link"),
		PresentationLink: stringField(raw, nil, "presentation_link"),
		LiveLink:         stringField(raw, nil, "live_link"),
		CreatedAt:        stringField(raw, nil, "created_at"),
	}
}

func categoryIDs(v any) []int64 {
	ids := []int64{}
	list, ok := v.([]any)
	if !ok {
		return ids
	}
	for _, item := range list {
		switch c := item.(type) {
		case map[string]any:
			ids = append(ids, intField(c, categoryAliases, "id"))
		default:
			ids = append(ids, asInt64(item))
		}
	}
	return ids
}

// Category normalizes a project-category object.
func Category(raw map[string]any) models.Category {
	return models.Category{
		ID:          intField(raw, categoryAliases, "id"),
		Name:        stringField(raw, categoryAliases, "name"),
		Description: stringField(raw, nil, "description"),
		UseCases:    useCases(raw),
		Skills:      SkillGroups(raw["skills"]),
	}
}

func useCases(raw map[string]any) []string {
	v, ok := resolve(raw, nil, "use_cases")
	if !ok {
		return []string{}
	}
	return stringSlice(v)
}
