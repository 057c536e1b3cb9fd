package models

import "strings"

// Category is a project category. UseCases has append-only semantics on
// update: the server appends submitted entries to its existing list rather
// than replacing it.
type Category struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UseCases    []string    `json:"use_cases"`
	Skills      []SkillArea `json:"skills"` // required-skills view
}

func (c Category) EntityID() int64 { return c.ID }

func (c Category) SearchText() string {
	return strings.Join([]string{c.Name, c.Description}, " ")
}
