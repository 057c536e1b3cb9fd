package controller

import (
	"encoding/json"
	"reflect"
)

// Diff returns the entries of edited whose values differ from the snapshot.
// Keys absent from edited are never included, so an edit form that only
// touches one field produces a one-field payload.
func Diff(snapshot, edited map[string]any) map[string]any {
	changed := map[string]any{}
	for key, value := range edited {
		before, ok := snapshot[key]
		if !ok {
			changed[key] = value
			continue
		}
		if !reflect.DeepEqual(jsonShape(before), jsonShape(value)) {
			changed[key] = value
		}
	}
	return changed
}

// entityToMap produces the canonical-keyed snapshot of an entity by
// round-tripping it through its JSON form.
func entityToMap(entity Entity) (map[string]any, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// jsonShape collapses a value to what it looks like after a JSON round-trip,
// so typed form values (int, []string) compare equal to decoded server
// values (float64, []any).
func jsonShape(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
