package client

import (
	"context"
	"net/http"

	"github.com/rpupo63/devdash-console/controller"
	"github.com/rpupo63/devdash-console/errs"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/normalize"
)

// Source adapters bind one entity type's client calls to the list
// controller, normalizing every raw payload on the read path.

type DeveloperSource struct {
	Client *Client
}

func (s DeveloperSource) FetchPage(ctx context.Context, page int) ([]controller.Entity, *models.Pagination, error) {
	raws, pagination, err := s.Client.ListDevelopers(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	entities := make([]controller.Entity, 0, len(raws))
	for _, raw := range raws {
		entities = append(entities, normalize.Developer(raw))
	}
	return entities, pagination, nil
}

func (s DeveloperSource) CreateEntity(ctx context.Context, draft map[string]any) (controller.Entity, error) {
	raw, err := s.Client.CreateDeveloper(ctx, draft)
	if err != nil {
		return nil, err
	}
	return normalize.Developer(raw), nil
}

func (s DeveloperSource) UpdateEntity(ctx context.Context, id int64, fields map[string]any) (controller.Entity, error) {
	raw, err := s.Client.UpdateDeveloper(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return normalize.Developer(raw), nil
}

type ProjectSource struct {
	Client *Client
}

func (s ProjectSource) FetchPage(ctx context.Context, page int) ([]controller.Entity, *models.Pagination, error) {
	raws, pagination, err := s.Client.ListProjects(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	entities := make([]controller.Entity, 0, len(raws))
	for _, raw := range raws {
		entities = append(entities, normalize.Project(raw))
	}
	return entities, pagination, nil
}

func (s ProjectSource) CreateEntity(ctx context.Context, draft map[string]any) (controller.Entity, error) {
	raw, err := s.Client.CreateProject(ctx, draft)
	if err != nil {
		return nil, err
	}
	return normalize.Project(raw), nil
}

func (s ProjectSource) UpdateEntity(ctx context.Context, id int64, fields map[string]any) (controller.Entity, error) {
	raw, err := s.Client.UpdateProject(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return normalize.Project(raw), nil
}

type SkillAreaSource struct {
	Client *Client
}

func (s SkillAreaSource) FetchPage(ctx context.Context, page int) ([]controller.Entity, *models.Pagination, error) {
	raws, pagination, err := s.Client.ListSkillAreas(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	entities := make([]controller.Entity, 0, len(raws))
	for _, raw := range raws {
		entities = append(entities, normalize.SkillArea(raw))
	}
	return entities, pagination, nil
}

func (s SkillAreaSource) CreateEntity(ctx context.Context, draft map[string]any) (controller.Entity, error) {
	raw, err := s.Client.CreateSkillArea(ctx, draft)
	if err != nil {
		return nil, err
	}
	return normalize.SkillArea(raw), nil
}

// UpdateEntity is unsupported: the backend contract exposes no skill-area
// update endpoint.
func (s SkillAreaSource) UpdateEntity(ctx context.Context, id int64, fields map[string]any) (controller.Entity, error) {
	return nil, errs.NewApiErr(http.StatusMethodNotAllowed, "skill areas cannot be updated")
}

type CategorySource struct {
	Client *Client
}

func (s CategorySource) FetchPage(ctx context.Context, page int) ([]controller.Entity, *models.Pagination, error) {
	raws, pagination, err := s.Client.ListCategories(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	entities := make([]controller.Entity, 0, len(raws))
	for _, raw := range raws {
		entities = append(entities, normalize.Category(raw))
	}
	return entities, pagination, nil
}

func (s CategorySource) CreateEntity(ctx context.Context, draft map[string]any) (controller.Entity, error) {
	raw, err := s.Client.CreateCategory(ctx, draft)
	if err != nil {
		return nil, err
	}
	return normalize.Category(raw), nil
}

func (s CategorySource) UpdateEntity(ctx context.Context, id int64, fields map[string]any) (controller.Entity, error) {
	raw, err := s.Client.UpdateCategory(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return normalize.Category(raw), nil
}
