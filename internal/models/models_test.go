package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategoryPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"single label", "food", false},
		{"two labels", "food.fast", false},
		{"three labels", "food.fast.pizza", false},
		{"digits and underscores", "retail.home_goods.b2b", false},
		{"four labels", "a.b.c.d", true},
		{"empty", "", true},
		{"empty label", "food..pizza", true},
		{"trailing dot", "food.", true},
		{"leading dot", ".food", true},
		{"uppercase", "Food.fast", true},
		{"space", "food fast", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		num     string
		wantErr bool
	}{
		{"e164", "+74951234567", false},
		{"plain digits", "84951234567", false},
		{"separators", "+7 (495) 123-45-67", false},
		{"too short", "12345", true},
		{"too long", "1234567890123456", true},
		{"plus inside", "7+4951234567", true},
		{"letters", "call-me-maybe", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoneNumber(tt.num)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePhoneNumberRequest_DefaultType(t *testing.T) {
	req := CreatePhoneNumberRequest{Number: "+74951234567", OrganizationID: 1}
	require.NoError(t, req.Validate())
	assert.Equal(t, DefaultPhoneType, req.PhoneType)

	req = CreatePhoneNumberRequest{Number: "+74951234567", PhoneType: "fax", OrganizationID: 1}
	require.NoError(t, req.Validate())
	assert.Equal(t, "fax", req.PhoneType)
}

func TestCoordinateValidate(t *testing.T) {
	lon, lat := 37.4966, 55.6943

	c := Coordinate{Longitude: &lon, Latitude: &lat}
	assert.NoError(t, c.Validate())

	assert.Error(t, (&Coordinate{Longitude: &lon}).Validate())
	assert.Error(t, (&Coordinate{Latitude: &lat}).Validate())

	bad := NewCoordinate(181, 0)
	assert.Error(t, bad.Validate())

	bad = NewCoordinate(0, -91)
	assert.Error(t, bad.Validate())

	// (0, 0) is a valid point, not an absent one.
	zero := NewCoordinate(0, 0)
	assert.NoError(t, zero.Validate())
}

func TestRadiusQueryValidate(t *testing.T) {
	q := RadiusQuery{Center: NewCoordinate(37.4966, 55.6943)}
	require.NoError(t, q.Validate())
	assert.Equal(t, 100.0, q.RadiusMeters)

	q = RadiusQuery{Center: NewCoordinate(37.4966, 55.6943), RadiusMeters: -5}
	assert.Error(t, q.Validate())
}

func TestCreateBuildingRequestValidate(t *testing.T) {
	req := CreateBuildingRequest{
		Address:  "Мичуринский проспект, 31 к. 4",
		Location: NewCoordinate(37.4966, 55.6943),
	}
	assert.NoError(t, req.Validate())

	req.Address = ""
	assert.ErrorIs(t, req.Validate(), ErrMissingAddress)
}

func TestCreateOrganizationRequestValidate(t *testing.T) {
	req := CreateOrganizationRequest{Name: "Pizza Corner", BuildingID: 3}
	assert.NoError(t, req.Validate())

	assert.ErrorIs(t, (&CreateOrganizationRequest{BuildingID: 3}).Validate(), ErrMissingName)
	assert.Error(t, (&CreateOrganizationRequest{Name: "x"}).Validate())
}

func TestCreateCategoryRequestValidate(t *testing.T) {
	req := CreateCategoryRequest{Name: "Pizza", Path: "food.fast.pizza"}
	assert.NoError(t, req.Validate())

	req = CreateCategoryRequest{Name: "Deep", Path: "a.b.c.d"}
	assert.Error(t, req.Validate())
}
