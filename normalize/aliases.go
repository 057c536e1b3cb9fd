// Package normalize maps raw backend payloads onto the canonical shapes in
// models. The backend has carried two field-naming conventions through its
// history (prefixed keys like skill_id/skill_name next to plain id/name), so
// every field resolves through an ordered alias list: first match wins, and
// when both aliases are present with different values the higher-priority
// alias wins silently. All functions are pure and never fail on missing
// optional fields; missing collections become empty slices.
package normalize

import "encoding/json"

// Alias tables, one per entity kind. Order inside each list is the
// resolution priority. Canonical key names appear in every list so that
// normalizing an already-canonical object is a no-op.
var (
	skillAliases = map[string][]string{
		"id":         {"skill_id", "id"},
		"name":       {"skill_name", "name"},
		"skill_area": {"skill_area", "skill_area_id"},
	}

	skillAreaAliases = map[string][]string{
		"id":   {"skill_area_id", "id"},
		"name": {"skill_area_name", "name"},
	}

	projectAliases = map[string][]string{
		"id":          {"project_id", "id"},
		"name":        {"project_name", "name"},
		"description": {"project_description", "description"},
		"tech_stack":  {"project_tech_stack", "tech_stack"},
		"origin":      {"project_origin", "origin"},
	}

	categoryAliases = map[string][]string{
		"id":   {"category_id", "id"},
		"name": {"category_name", "name"},
	}
)

// resolve returns the first present alias value for the canonical field.
func resolve(raw map[string]any, aliases map[string][]string, canonical string) (any, bool) {
	keys, ok := aliases[canonical]
	if !ok {
		keys = []string{canonical}
	}
	for _, key := range keys {
		if v, present := raw[key]; present && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw map[string]any, aliases map[string][]string, canonical string) string {
	v, ok := resolve(raw, aliases, canonical)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func intField(raw map[string]any, aliases map[string][]string, canonical string) int64 {
	v, ok := resolve(raw, aliases, canonical)
	if !ok {
		return 0
	}
	return asInt64(v)
}

func boolField(raw map[string]any, aliases map[string][]string, canonical string) bool {
	v, ok := resolve(raw, aliases, canonical)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// asInt64 tolerates the numeric types encoding/json can hand back.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// stringSlice converts a decoded JSON array into []string, skipping
// non-string elements. Never returns nil.
func stringSlice(v any) []string {
	out := []string{}
	switch list := v.(type) {
	case []string:
		return append(out, list...)
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// mapSlice converts a decoded JSON array into its object elements, skipping
// anything that is not an object.
func mapSlice(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
