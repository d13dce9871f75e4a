package client

import (
	"context"
	"net/url"
	"strconv"
)

// OrganizationService handles organization CRUD and search operations.
type OrganizationService struct {
	c *Client
}

// organizationListResponse wraps the organization list response.
type organizationListResponse struct {
	Organizations []Organization `json:"organizations"`
}

// List returns organizations with optional pagination.
func (s *OrganizationService) List(ctx context.Context, opts *ListOptions) ([]Organization, error) {
	var resp organizationListResponse
	if err := s.c.get(ctx, "/api/v1/organizations", opts.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// Get returns a single organization by ID with phones and categories.
func (s *OrganizationService) Get(ctx context.Context, id int64) (*Organization, error) {
	var org Organization
	if err := s.c.get(ctx, "/api/v1/organizations/"+strconv.FormatInt(id, 10), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName returns the first organization whose name matches exactly.
func (s *OrganizationService) GetByName(ctx context.Context, name string) (*Organization, error) {
	params := url.Values{}
	params.Set("name", name)

	var org Organization
	if err := s.c.get(ctx, "/api/v1/organizations/by-name", params, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListByBuilding returns every organization registered in the given building.
func (s *OrganizationService) ListByBuilding(ctx context.Context, buildingID int64) ([]Organization, error) {
	var resp organizationListResponse
	path := "/api/v1/organizations/by-building/" + strconv.FormatInt(buildingID, 10)
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// FindByCategory returns organizations linked to the named category or any
// of its descendants.
func (s *OrganizationService) FindByCategory(ctx context.Context, path string) ([]Organization, error) {
	params := url.Values{}
	params.Set("path", path)

	var resp organizationListResponse
	if err := s.c.get(ctx, "/api/v1/organizations/by-category", params, &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// Create creates a new organization.
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*Organization, error) {
	var org Organization
	if err := s.c.post(ctx, "/api/v1/organizations", req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// Update partially updates an organization.
func (s *OrganizationService) Update(ctx context.Context, id int64, req *UpdateOrganizationRequest) (*Organization, error) {
	var org Organization
	if err := s.c.put(ctx, "/api/v1/organizations/"+strconv.FormatInt(id, 10), req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// Delete removes an organization along with its phone numbers.
func (s *OrganizationService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/organizations/"+strconv.FormatInt(id, 10))
}

// FindInRadius returns organizations whose building lies within the radius.
func (s *OrganizationService) FindInRadius(ctx context.Context, q *RadiusQuery) ([]Organization, error) {
	var resp organizationListResponse
	if err := s.c.post(ctx, "/api/v1/organizations/find/radius", q, &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}

// FindInBBox returns organizations whose building lies inside the envelope.
func (s *OrganizationService) FindInBBox(ctx context.Context, q *BBoxQuery) ([]Organization, error) {
	var resp organizationListResponse
	if err := s.c.post(ctx, "/api/v1/organizations/find/bbox", q, &resp); err != nil {
		return nil, err
	}
	return resp.Organizations, nil
}
