package client

import (
	"context"
	"net/url"
	"strconv"
)

// CategoryService handles business category CRUD operations.
type CategoryService struct {
	c *Client
}

// categoryListResponse wraps the category list response.
type categoryListResponse struct {
	Categories []BusinessCategory `json:"categories"`
}

// List returns categories with optional pagination.
func (s *CategoryService) List(ctx context.Context, opts *ListOptions) ([]BusinessCategory, error) {
	var resp categoryListResponse
	if err := s.c.get(ctx, "/api/v1/categories", opts.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Get returns a single category by ID.
func (s *CategoryService) Get(ctx context.Context, id int64) (*BusinessCategory, error) {
	var cat BusinessCategory
	if err := s.c.get(ctx, "/api/v1/categories/"+strconv.FormatInt(id, 10), nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetByPath returns the category with the exact ltree path.
func (s *CategoryService) GetByPath(ctx context.Context, path string) (*BusinessCategory, error) {
	params := url.Values{}
	params.Set("path", path)

	var cat BusinessCategory
	if err := s.c.get(ctx, "/api/v1/categories/by-path", params, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Create creates a new business category.
func (s *CategoryService) Create(ctx context.Context, req *CreateCategoryRequest) (*BusinessCategory, error) {
	var cat BusinessCategory
	if err := s.c.post(ctx, "/api/v1/categories", req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Update partially updates a business category.
func (s *CategoryService) Update(ctx context.Context, id int64, req *UpdateCategoryRequest) (*BusinessCategory, error) {
	var cat BusinessCategory
	if err := s.c.put(ctx, "/api/v1/categories/"+strconv.FormatInt(id, 10), req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes a business category. Linked organizations survive with the
// association rows cleaned up.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/categories/"+strconv.FormatInt(id, 10))
}
