package models

import "fmt"

// Organization is a directory entry located in exactly one building.
// Phone numbers and categories are always loaded with the base row.
type Organization struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	BuildingID         int64              `json:"building_id"`
	PhoneNumbers       []PhoneNumber      `json:"phone_numbers"`
	BusinessCategories []BusinessCategory `json:"business_categories"`
}

// CreateOrganizationRequest is the payload for creating an organization.
// PhoneNumberIDs and BusinessCategoryIDs become the initial association
// sets; unknown ids are silently dropped.
type CreateOrganizationRequest struct {
	Name                string  `json:"name"`
	BuildingID          int64   `json:"building_id"`
	PhoneNumberIDs      []int64 `json:"phone_number_ids,omitempty"`
	BusinessCategoryIDs []int64 `json:"business_category_ids,omitempty"`
}

// Validate checks required fields and length limits.
func (r *CreateOrganizationRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if r.BuildingID == 0 {
		return fmt.Errorf("building_id is required")
	}

	return nil
}

// UpdateOrganizationRequest is the payload for partially updating an
// organization. Nil fields are left unchanged. Non-nil id lists replace
// the full association set; an empty slice clears it.
type UpdateOrganizationRequest struct {
	Name                *string  `json:"name,omitempty"`
	BuildingID          *int64   `json:"building_id,omitempty"`
	PhoneNumberIDs      *[]int64 `json:"phone_number_ids,omitempty"`
	BusinessCategoryIDs *[]int64 `json:"business_category_ids,omitempty"`
}

// Validate checks the supplied fields of UpdateOrganizationRequest.
func (r *UpdateOrganizationRequest) Validate() error {
	if r.Name != nil {
		if *r.Name == "" {
			return ErrMissingName
		}

		if len(*r.Name) > 255 {
			return ErrFieldTooLong("name", 255)
		}
	}

	if r.BuildingID != nil && *r.BuildingID == 0 {
		return fmt.Errorf("building_id must not be zero")
	}

	return nil
}
