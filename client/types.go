package client

// Coordinate is a WGS84 longitude/latitude pair. Pointer fields distinguish
// absent values from zero, matching the server's validation.
type Coordinate struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// NewCoordinate builds a Coordinate from plain values.
func NewCoordinate(lon, lat float64) Coordinate {
	return Coordinate{Longitude: &lon, Latitude: &lat}
}

// Building is a street address with a geographic point.
type Building struct {
	ID       int64      `json:"id"`
	Address  string     `json:"address"`
	Location Coordinate `json:"location"`
}

// PhoneNumber belongs to exactly one organization.
type PhoneNumber struct {
	ID             int64  `json:"id"`
	Number         string `json:"number"`
	PhoneType      string `json:"phone_type"`
	OrganizationID int64  `json:"organization_id"`
}

// BusinessCategory is a node in the ltree-backed category hierarchy.
type BusinessCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Organization is a company registered in a building, with its phone numbers
// and business categories eagerly loaded.
type Organization struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	BuildingID         int64              `json:"building_id"`
	PhoneNumbers       []PhoneNumber      `json:"phone_numbers"`
	BusinessCategories []BusinessCategory `json:"business_categories"`
}

// CreateBuildingRequest is the payload for creating a building.
type CreateBuildingRequest struct {
	Address  string     `json:"address"`
	Location Coordinate `json:"location"`
}

// UpdateBuildingRequest is the payload for partially updating a building.
type UpdateBuildingRequest struct {
	Address  *string     `json:"address,omitempty"`
	Location *Coordinate `json:"location,omitempty"`
}

// CreateOrganizationRequest is the payload for creating an organization.
type CreateOrganizationRequest struct {
	Name                string  `json:"name"`
	BuildingID          int64   `json:"building_id"`
	PhoneNumberIDs      []int64 `json:"phone_number_ids,omitempty"`
	BusinessCategoryIDs []int64 `json:"business_category_ids,omitempty"`
}

// UpdateOrganizationRequest is the payload for partially updating an organization.
type UpdateOrganizationRequest struct {
	Name                *string  `json:"name,omitempty"`
	BuildingID          *int64   `json:"building_id,omitempty"`
	PhoneNumberIDs      *[]int64 `json:"phone_number_ids,omitempty"`
	BusinessCategoryIDs *[]int64 `json:"business_category_ids,omitempty"`
}

// CreatePhoneNumberRequest is the payload for creating a phone number.
type CreatePhoneNumberRequest struct {
	Number         string `json:"number"`
	PhoneType      string `json:"phone_type,omitempty"`
	OrganizationID int64  `json:"organization_id"`
}

// UpdatePhoneNumberRequest is the payload for partially updating a phone number.
type UpdatePhoneNumberRequest struct {
	Number         *string `json:"number,omitempty"`
	PhoneType      *string `json:"phone_type,omitempty"`
	OrganizationID *int64  `json:"organization_id,omitempty"`
}

// CreateCategoryRequest is the payload for creating a business category.
type CreateCategoryRequest struct {
	Name            string  `json:"name"`
	Path            string  `json:"path"`
	OrganizationIDs []int64 `json:"organization_ids,omitempty"`
}

// UpdateCategoryRequest is the payload for partially updating a business category.
type UpdateCategoryRequest struct {
	Name            *string  `json:"name,omitempty"`
	Path            *string  `json:"path,omitempty"`
	OrganizationIDs *[]int64 `json:"organization_ids,omitempty"`
}

// RadiusQuery selects entities within radius_meters of center.
type RadiusQuery struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters,omitempty"`
}

// BBoxQuery selects entities inside the envelope spanned by two corners.
type BBoxQuery struct {
	TopLeft     Coordinate `json:"top_left"`
	BottomRight Coordinate `json:"bottom_right"`
}

// HealthResponse is the payload returned by the liveness endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
