package models

import "strings"

// Developer is the canonical post-normalization shape of a developer record.
// Skills and Projects are always non-nil after normalization, even when the
// server omits them.
type Developer struct {
	ID                  int64            `json:"id"`
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	Role                string           `json:"role"`
	GraduationDate      string           `json:"graduation_date,omitempty"` // YYYY-MM-DD
	IndustryExperience  int              `json:"industry_experience"`       // years
	EmploymentStartDate string           `json:"employment_start_date,omitempty"`
	IsAvailable         bool             `json:"is_available"`
	CreatedAt           string           `json:"created_at,omitempty"`
	LastUpdated         string           `json:"last_updated,omitempty"`
	Skills              []SkillArea      `json:"skills"`
	Projects            []ProjectSummary `json:"projects"`
}

func (d Developer) EntityID() int64 { return d.ID }

func (d Developer) SearchText() string {
	return strings.Join([]string{d.Name, d.Email, d.Role}, " ")
}

// NewDeveloperDraft builds a create payload with the documented defaults.
// is_available defaults to true at creation time only, never at read time.
func NewDeveloperDraft(name, email, role string) map[string]any {
	return map[string]any{
		"name":         name,
		"email":        email,
		"role":         role,
		"is_available": true,
	}
}
