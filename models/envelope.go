package models

import "encoding/json"

// Envelope is the uniform response wrapper every backend endpoint uses.
type Envelope struct {
	Details    string          `json:"details"`
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

type Pagination struct {
	Count       int     `json:"count"`
	Next        *string `json:"next"`
	Previous    *string `json:"previous"`
	CurrentPage int     `json:"current_page"`
	PageSize    int     `json:"page_size"`
}

// TotalPages derives the page count from the count/page-size pair.
// Always at least 1, even for an empty collection.
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 1
	}
	pages := (p.Count + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}
