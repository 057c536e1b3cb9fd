package models

// Skill is a single named skill. SkillArea is a back-reference to the owning
// area by id; ownership is referential only.
type Skill struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SkillArea int64  `json:"skill_area,omitempty"`
}

// SkillArea groups skills under a named area. Skills is lazily populated:
// the list endpoint leaves it empty until the detail endpoint is fetched.
type SkillArea struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"created_at,omitempty"`
	Skills    []Skill `json:"skills"`
}

func (a SkillArea) EntityID() int64 { return a.ID }

func (a SkillArea) SearchText() string { return a.Name }
