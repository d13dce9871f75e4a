package client

import (
	"context"
	"net/url"
	"strconv"
)

// BuildingService handles building CRUD and geosearch operations.
type BuildingService struct {
	c *Client
}

// buildingListResponse wraps the building list response.
type buildingListResponse struct {
	Buildings []Building `json:"buildings"`
}

// ListOptions controls pagination for list calls.
type ListOptions struct {
	Limit  int
	Offset int
}

func (o *ListOptions) values() url.Values {
	params := url.Values{}
	if o != nil {
		if o.Limit > 0 {
			params.Set("limit", strconv.Itoa(o.Limit))
		}
		if o.Offset > 0 {
			params.Set("offset", strconv.Itoa(o.Offset))
		}
	}
	return params
}

// List returns buildings with optional pagination.
func (s *BuildingService) List(ctx context.Context, opts *ListOptions) ([]Building, error) {
	var resp buildingListResponse
	if err := s.c.get(ctx, "/api/v1/buildings", opts.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Buildings, nil
}

// Get returns a single building by ID.
func (s *BuildingService) Get(ctx context.Context, id int64) (*Building, error) {
	var b Building
	if err := s.c.get(ctx, "/api/v1/buildings/"+strconv.FormatInt(id, 10), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create creates a new building.
func (s *BuildingService) Create(ctx context.Context, req *CreateBuildingRequest) (*Building, error) {
	var b Building
	if err := s.c.post(ctx, "/api/v1/buildings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update partially updates a building.
func (s *BuildingService) Update(ctx context.Context, id int64, req *UpdateBuildingRequest) (*Building, error) {
	var b Building
	if err := s.c.put(ctx, "/api/v1/buildings/"+strconv.FormatInt(id, 10), req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a building. Fails with a 409 conflict while any
// organization is still registered in it.
func (s *BuildingService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/buildings/"+strconv.FormatInt(id, 10))
}

// FindInRadius returns buildings within the given geodesic radius.
func (s *BuildingService) FindInRadius(ctx context.Context, q *RadiusQuery) ([]Building, error) {
	var resp buildingListResponse
	if err := s.c.post(ctx, "/api/v1/buildings/find/radius", q, &resp); err != nil {
		return nil, err
	}
	return resp.Buildings, nil
}

// FindInBBox returns buildings inside the rectangular envelope.
func (s *BuildingService) FindInBBox(ctx context.Context, q *BBoxQuery) ([]Building, error) {
	var resp buildingListResponse
	if err := s.c.post(ctx, "/api/v1/buildings/find/bbox", q, &resp); err != nil {
		return nil, err
	}
	return resp.Buildings, nil
}
