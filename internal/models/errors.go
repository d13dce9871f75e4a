package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingAddress  = errors.New("address is required")
	ErrMissingName     = errors.New("name is required")
	ErrMissingNumber   = errors.New("number is required")
	ErrMissingPath     = errors.New("path is required")
	ErrMissingLocation = errors.New("location is required")
)

// Sentinel errors for entity lookups.
var (
	ErrBuildingNotFound     = errors.New("building not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrPhoneNumberNotFound  = errors.New("phone number not found")
	ErrCategoryNotFound     = errors.New("business category not found")
)

// Uniqueness violations (map to HTTP 409 Conflict).
var (
	ErrAddressExists      = errors.New("building address already exists")
	ErrCategoryPathExists = errors.New("business category path already exists")
)

// ErrOrganizationsExist indicates a building cannot be deleted because
// organizations still reference it (maps to HTTP 409 Conflict).
var ErrOrganizationsExist = errors.New("organizations still reference this building")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
