// Package controller owns the paginated view over one entity collection and
// reconciles optimistic local edits with server truth. One ListController
// instance exists per entity type (developers, projects, skill areas,
// categories).
//
// All methods assume the single-threaded, event-driven call discipline of
// the console loop; the controller is not safe for concurrent use.
package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/notify"
)

// Entity is what a controller can hold: anything with a server-assigned id
// and a searchable text projection.
type Entity interface {
	EntityID() int64
	SearchText() string
}

// Source is the per-entity-type data access the controller drives. Sources
// normalize raw payloads on the way in, so the controller only ever sees
// canonical entities.
type Source interface {
	FetchPage(ctx context.Context, page int) ([]Entity, *models.Pagination, error)
	CreateEntity(ctx context.Context, draft map[string]any) (Entity, error)
	UpdateEntity(ctx context.Context, id int64, fields map[string]any) (Entity, error)
}

type ListController struct {
	name     string
	source   Source
	notifier notify.Notifier
	logger   zerolog.Logger

	items       []Entity
	currentPage int
	totalPages  int
	isLoading   bool

	// snapshots holds the last server-confirmed shape per id, keyed by
	// canonical field names. Updates diff against these so a PUT only
	// carries fields the user actually changed.
	snapshots map[int64]map[string]any

	// generations guards against unserialized concurrent updates on the
	// same id: a response that is not the latest issued for that id is
	// discarded instead of clobbering newer state.
	generations map[int64]uint64
}

func New(name string, source Source, notifier notify.Notifier) *ListController {
	logger := log.With().Str("controller", name).Logger()

	return &ListController{
		name:        name,
		source:      source,
		notifier:    notifier,
		logger:      logger,
		currentPage: 1,
		totalPages:  1,
		snapshots:   make(map[int64]map[string]any),
		generations: make(map[int64]uint64),
	}
}

func (c *ListController) Items() []Entity  { return c.items }
func (c *ListController) CurrentPage() int { return c.currentPage }
func (c *ListController) TotalPages() int  { return c.totalPages }
func (c *ListController) IsLoading() bool  { return c.isLoading }

// Snapshot returns the last server-confirmed shape of an entity, for wiring
// edit forms.
func (c *ListController) Snapshot(id int64) (map[string]any, bool) {
	snap, ok := c.snapshots[id]
	return snap, ok
}

// Load fetches one page and replaces the item list wholesale. On failure the
// list keeps showing its stale items and the failure goes to the
// notification sink; there is no separate error state.
func (c *ListController) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	c.isLoading = true
	defer func() { c.isLoading = false }()

	fetched, pagination, err := c.source.FetchPage(ctx, page)
	if err != nil {
		c.logger.Warn().Err(err).Int("page", page).Msg("page load failed, keeping stale items")
		c.notifyFailure(err)
		return err
	}

	c.items = fetched
	c.currentPage = page
	if pagination != nil {
		c.totalPages = pagination.TotalPages()
	} else {
		c.totalPages = 1
	}

	c.snapshots = make(map[int64]map[string]any, len(fetched))
	for _, item := range fetched {
		if snap, err := entityToMap(item); err == nil {
			c.snapshots[item.EntityID()] = snap
		}
	}
	return nil
}

// Create posts the draft and optimistically appends the server-returned
// entity to the end of the current page without re-fetching. Failures
// propagate to the caller for form-level display.
func (c *ListController) Create(ctx context.Context, draft map[string]any) (Entity, error) {
	created, err := c.source.CreateEntity(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.Append(created)
	return created, nil
}

// Append adds an already-created entity to the list, e.g. one produced by
// the project wizard whose POST happened outside this controller.
func (c *ListController) Append(entity Entity) {
	c.items = append(c.items, entity)
	if snap, err := entityToMap(entity); err == nil {
		c.snapshots[entity.EntityID()] = snap
	}
}

// Update diffs edited against the entity's last-loaded snapshot and PUTs
// only the changed fields. A response that lost the race to a later update
// on the same id is discarded.
func (c *ListController) Update(ctx context.Context, id int64, edited map[string]any) (Entity, error) {
	snapshot, ok := c.snapshots[id]
	if !ok {
		return nil, errs.NewNotFoundError("no loaded snapshot for entity")
	}

	changed := Diff(snapshot, edited)
	if len(changed) == 0 {
		c.logger.Debug().Int64("id", id).Msg("update skipped, nothing changed")
		return c.find(id), nil
	}

	c.generations[id]++
	generation := c.generations[id]

	updated, err := c.source.UpdateEntity(ctx, id, changed)
	if err != nil {
		return nil, err
	}

	if c.generations[id] != generation {
		c.logger.Warn().Int64("id", id).Uint64("generation", generation).Msg("discarding out-of-date update response")
		return nil, errs.ErrStaleResponse
	}

	c.replace(id, updated)
	if snap, err := entityToMap(updated); err == nil {
		c.snapshots[id] = snap
	}
	return updated, nil
}

// RemoveLocal removes an item from the local list only. There is no DELETE
// endpoint in the backend contract, so this is not durable: a subsequent
// Load resurrects the item. Pending backend support.
func (c *ListController) RemoveLocal(id int64) bool {
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Filter is the pure, derived search view: case-insensitive substring match
// over each entity's search text. Never persisted, never server-side.
func (c *ListController) Filter(query string) []Entity {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]Entity(nil), c.items...)
	}

	matched := []Entity{}
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.SearchText()), query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// find returns the first item with the given id, or nil.
func (c *ListController) find(id int64) Entity {
	for _, item := range c.items {
		if item.EntityID() == id {
			return item
		}
	}
	return nil
}

// replace swaps the first item with a matching id. Linear scan, first match,
// same as the list render order.
func (c *ListController) replace(id int64, entity Entity) {
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items[i] = entity
			return
		}
	}
}

// notifyFailure routes a load failure to the sink. Auth failures were
// already notified by the client's global 401 handler, and each failure
// produces exactly one notification.
func (c *ListController) notifyFailure(err error) {
	switch {
	case errs.IsUnauthorized(err):
		return
	case errs.IsServer(err):
		c.notifier.Error("Something went wrong on the server. Please try again later.")
	default:
		var apiErr *errs.ApiErr
		if errors.As(err, &apiErr) && apiErr.Details != "" {
			c.notifier.Error(apiErr.Details)
		} else {
			c.notifier.Error("Failed to load " + c.name + ".")
		}
	}
}
