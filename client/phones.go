package client

import (
	"context"
	"strconv"
)

// PhoneService handles phone number CRUD operations.
type PhoneService struct {
	c *Client
}

// phoneListResponse wraps the phone number list response.
type phoneListResponse struct {
	PhoneNumbers []PhoneNumber `json:"phone_numbers"`
}

// List returns phone numbers with optional pagination.
func (s *PhoneService) List(ctx context.Context, opts *ListOptions) ([]PhoneNumber, error) {
	var resp phoneListResponse
	if err := s.c.get(ctx, "/api/v1/phone-numbers", opts.values(), &resp); err != nil {
		return nil, err
	}
	return resp.PhoneNumbers, nil
}

// Get returns a single phone number by ID.
func (s *PhoneService) Get(ctx context.Context, id int64) (*PhoneNumber, error) {
	var p PhoneNumber
	if err := s.c.get(ctx, "/api/v1/phone-numbers/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new phone number for an organization.
func (s *PhoneService) Create(ctx context.Context, req *CreatePhoneNumberRequest) (*PhoneNumber, error) {
	var p PhoneNumber
	if err := s.c.post(ctx, "/api/v1/phone-numbers", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update partially updates a phone number, including re-parenting it to
// another organization.
func (s *PhoneService) Update(ctx context.Context, id int64, req *UpdatePhoneNumberRequest) (*PhoneNumber, error) {
	var p PhoneNumber
	if err := s.c.put(ctx, "/api/v1/phone-numbers/"+strconv.FormatInt(id, 10), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a phone number.
func (s *PhoneService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, "/api/v1/phone-numbers/"+strconv.FormatInt(id, 10))
}
