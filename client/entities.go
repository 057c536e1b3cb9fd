package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rpupo63/devdash-console/models"
)

// List and detail calls hand back raw decoded objects: normalization is the
// read-path concern of the list controllers, and keeping it there means the
// alias tables live in exactly one place.

func (c *Client) listPage(ctx context.Context, path string, page int) ([]map[string]any, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	envelope, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d", path, page), nil)
	if err != nil {
		return nil, nil, err
	}
	items, err := decodeList(envelope)
	if err != nil {
		return nil, nil, err
	}
	return items, envelope.Pagination, nil
}

func (c *Client) getOne(ctx context.Context, path string, id int64) (map[string]any, error) {
	envelope, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", path, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeObject(envelope)
}

func (c *Client) createOne(ctx context.Context, path string, draft map[string]any) (map[string]any, error) {
	envelope, err := c.do(ctx, http.MethodPost, path, draft)
	if err != nil {
		return nil, err
	}
	return decodeObject(envelope)
}

// updateOne sends a partial PUT. fields must contain only what actually
// changed; the server merges, and sending unloaded fields would overwrite
// server-side state the console never fetched.
func (c *Client) updateOne(ctx context.Context, path string, id int64, fields map[string]any) (map[string]any, error) {
	envelope, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", path, id), fields)
	if err != nil {
		return nil, err
	}
	return decodeObject(envelope)
}

// Developers

func (c *Client) ListDevelopers(ctx context.Context, page int) ([]map[string]any, *models.Pagination, error) {
	return c.listPage(ctx, "/api/developers", page)
}

func (c *Client) GetDeveloper(ctx context.Context, id int64) (map[string]any, error) {
	return c.getOne(ctx, "/api/developers", id)
}

func (c *Client) CreateDeveloper(ctx context.Context, draft map[string]any) (map[string]any, error) {
	return c.createOne(ctx, "/api/developers", draft)
}

func (c *Client) UpdateDeveloper(ctx context.Context, id int64, fields map[string]any) (map[string]any, error) {
	return c.updateOne(ctx, "/api/developers", id, fields)
}

// Skill areas

func (c *Client) ListSkillAreas(ctx context.Context, page int) ([]map[string]any, *models.Pagination, error) {
	return c.listPage(ctx, "/api/skill-areas", page)
}

func (c *Client) GetSkillArea(ctx context.Context, id int64) (map[string]any, error) {
	return c.getOne(ctx, "/api/skill-areas", id)
}

func (c *Client) CreateSkillArea(ctx context.Context, draft map[string]any) (map[string]any, error) {
	return c.createOne(ctx, "/api/skill-areas", draft)
}

// Projects

func (c *Client) ListProjects(ctx context.Context, page int) ([]map[string]any, *models.Pagination, error) {
	return c.listPage(ctx, "/api/projects", page)
}

func (c *Client) GetProject(ctx context.Context, id int64) (map[string]any, error) {
	return c.getOne(ctx, "/api/projects", id)
}

func (c *Client) CreateProject(ctx context.Context, draft map[string]any) (map[string]any, error) {
	return c.createOne(ctx, "/api/projects", draft)
}

func (c *Client) UpdateProject(ctx context.Context, id int64, fields map[string]any) (map[string]any, error) {
	return c.updateOne(ctx, "/api/projects", id, fields)
}

// Project categories

func (c *Client) ListCategories(ctx context.Context, page int) ([]map[string]any, *models.Pagination, error) {
	return c.listPage(ctx, "/api/project-categories", page)
}

func (c *Client) CreateCategory(ctx context.Context, draft map[string]any) (map[string]any, error) {
	return c.createOne(ctx, "/api/project-categories", draft)
}

// UpdateCategory sends a partial PUT. Note the server-side semantics for
// use_cases: submitted entries are APPENDED to the existing list, not a
// replacement. Callers must not resend the full list.
func (c *Client) UpdateCategory(ctx context.Context, id int64, fields map[string]any) (map[string]any, error) {
	return c.updateOne(ctx, "/api/project-categories", id, fields)
}
