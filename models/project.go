package models

import "strings"

// Project represents a developer project with metadata and links
type Project struct {
	ID               int64       `json:"id"`
	Developer        int64       `json:"developer"`
	DeveloperName    string      `json:"developer_name,omitempty"` // denormalized display cache
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Categories       []int64     `json:"project_categories"`
	TechStack        []string    `json:"tech_stack"`
	Origin           string      `json:"project_origin"`
	Skills           []SkillArea `json:"skills"` // read-only denormalized view
	RepoLink         string      `json:"repo_link,omitempty"`
	DocLink          string      `json:"doc_link,omitempty"`
	PresentationLink string      `json:"presentation_link,omitempty"`
	LiveLink         string      `json:"live_link,omitempty"`
	CreatedAt        string      `json:"created_at,omitempty"`
}

func (p Project) EntityID() int64 { return p.ID }

func (p Project) SearchText() string {
	return strings.Join([]string{p.Name, p.Description, p.DeveloperName}, " ")
}

// ProjectSummary is the embedded form a developer detail response carries.
type ProjectSummary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	TechStack   []string `json:"tech_stack"`
	Origin      string   `json:"project_origin,omitempty"`
}
