package stubserver

import (
	"fmt"
	"sort"

	"github.com/rpupo63/devdash-console/models"
)

// View builders reproduce the backend's response shapes, including the
// legacy prefixed field names some endpoints still emit. Callers hold the
// store lock.

func developerBase(d *developerRecord) map[string]any {
	return map[string]any{
		"id":                    d.ID,
		"name":                  d.Name,
		"email":                 d.Email,
		"role":                  d.Role,
		"graduation_date":       d.GraduationDate,
		"industry_experience":   d.IndustryExperience,
		"employment_start_date": d.EmploymentStartDate,
		"is_available":          d.IsAvailable,
		"created_at":            d.CreatedAt,
		"last_updated":          d.LastUpdated,
	}
}

func (s *store) developerDetail(d *developerRecord) map[string]any {
	view := developerBase(d)
	view["skills"] = s.legacySkillGroups(d.SkillIDs)

	projects := []map[string]any{}
	for _, id := range sortedIDs(s.projects) {
		p := s.projects[id]
		if p.DeveloperID != d.ID {
			continue
		}
		projects = append(projects, map[string]any{
			"project_id":          p.ID,
			"project_name":        p.Name,
			"project_description": p.Description,
			"project_tech_stack":  p.TechStack,
			"project_origin":      p.Origin,
		})
	}
	view["projects"] = projects
	return view
}

// legacySkillGroups groups skills by area using the historical key names.
func (s *store) legacySkillGroups(skillIDs []int64) []map[string]any {
	byArea := map[int64][]map[string]any{}
	for _, skillID := range skillIDs {
		skill, ok := s.skills[skillID]
		if !ok {
			continue
		}
		byArea[skill.AreaID] = append(byArea[skill.AreaID], map[string]any{
			"skill_id":   skill.ID,
			"skill_name": skill.Name,
		})
	}

	areaIDs := make([]int64, 0, len(byArea))
	for areaID := range byArea {
		areaIDs = append(areaIDs, areaID)
	}
	sort.Slice(areaIDs, func(i, j int) bool { return areaIDs[i] < areaIDs[j] })

	groups := []map[string]any{}
	for _, areaID := range areaIDs {
		name := ""
		if area, ok := s.skillAreas[areaID]; ok {
			name = area.Name
		}
		groups = append(groups, map[string]any{
			"skill_area_id":   areaID,
			"skill_area_name": name,
			"skills":          byArea[areaID],
		})
	}
	return groups
}

func skillAreaBase(a *skillAreaRecord) map[string]any {
	return map[string]any{
		"id":         a.ID,
		"name":       a.Name,
		"created_at": a.CreatedAt,
	}
}

func (s *store) skillAreaDetail(a *skillAreaRecord) map[string]any {
	skills := []map[string]any{}
	for _, id := range sortedIDs(s.skills) {
		skill := s.skills[id]
		if skill.AreaID != a.ID {
			continue
		}
		skills = append(skills, map[string]any{
			"skill_id":   skill.ID,
			"skill_name": skill.Name,
		})
	}

	view := skillAreaBase(a)
	view["skills"] = skills
	return view
}

// projectListItem is the list view, which still carries the legacy keys.
func (s *store) projectListItem(p *projectRecord) map[string]any {
	return map[string]any{
		"project_id":          p.ID,
		"project_name":        p.Name,
		"project_description": p.Description,
		"project_tech_stack":  p.TechStack,
		"project_origin":      p.Origin,
		"developer":           p.DeveloperID,
		"developer_name":      s.developerName(p.DeveloperID),
		"created_at":          p.CreatedAt,
	}
}

func (s *store) projectDetail(p *projectRecord) map[string]any {
	categories := []map[string]any{}
	for _, categoryID := range p.CategoryIDs {
		if category, ok := s.categories[categoryID]; ok {
			categories = append(categories, map[string]any{
				"category_id":   category.ID,
				"category_name": category.Name,
			})
		}
	}

	return map[string]any{
		"id":                 p.ID,
		"developer":          p.DeveloperID,
		"developer_name":     s.developerName(p.DeveloperID),
		"name":               p.Name,
		"description":        p.Description,
		"project_categories": categories,
		"tech_stack":         p.TechStack,
		"project_origin":     p.Origin,
		"skills":             s.legacySkillGroups(p.SkillIDs),
		"repo_link":          p.RepoLink,
		"doc_link":           p.DocLink,
		"presentation_link":  p.PresentationLink,
		"live_link":          p.LiveLink,
		"created_at":         p.CreatedAt,
	}
}

func (s *store) developerName(id int64) string {
	if d, ok := s.developers[id]; ok {
		return d.Name
	}
	return ""
}

func (s *store) categoryView(c *categoryRecord) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
		"use_cases":   c.UseCases,
		"skills":      s.legacySkillGroups(c.SkillIDs),
	}
}

// buildPagination derives the envelope pagination block for a list response.
func buildPagination(count, page, pageSize int, path string) *models.Pagination {
	p := &models.Pagination{
		Count:       count,
		CurrentPage: page,
		PageSize:    pageSize,
	}

	totalPages := (count + pageSize - 1) / pageSize
	if page < totalPages {
		next := fmt.Sprintf("%s?page=%d", path, page+1)
		p.Next = &next
	}
	if page > 1 {
		previous := fmt.Sprintf("%s?page=%d", path, page-1)
		p.Previous = &previous
	}
	return p
}
