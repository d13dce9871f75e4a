package models

// Building is a street address with a single WGS84 point.
type Building struct {
	ID       int64      `json:"id"`
	Address  string     `json:"address"`
	Location Coordinate `json:"location"`
}

// CreateBuildingRequest is the payload for creating a new building.
type CreateBuildingRequest struct {
	Address  string     `json:"address"`
	Location Coordinate `json:"location"`
}

// Validate checks that required fields are present and within limits.
func (r *CreateBuildingRequest) Validate() error {
	if r.Address == "" {
		return ErrMissingAddress
	}

	if len(r.Address) > 255 {
		return ErrFieldTooLong("address", 255)
	}

	return r.Location.Validate()
}

// UpdateBuildingRequest is the payload for partially updating a building.
// Nil fields are left unchanged.
type UpdateBuildingRequest struct {
	Address  *string     `json:"address,omitempty"`
	Location *Coordinate `json:"location,omitempty"`
}

// Validate checks the supplied fields of UpdateBuildingRequest.
func (r *UpdateBuildingRequest) Validate() error {
	if r.Address != nil {
		if *r.Address == "" {
			return ErrMissingAddress
		}

		if len(*r.Address) > 255 {
			return ErrFieldTooLong("address", 255)
		}
	}

	if r.Location != nil {
		return r.Location.Validate()
	}

	return nil
}
