package models

import "fmt"

// DefaultPhoneType is assigned when a create payload omits phone_type.
const DefaultPhoneType = "main"

// PhoneNumber is a contact number owned by exactly one organization.
type PhoneNumber struct {
	ID             int64  `json:"id"`
	Number         string `json:"number"`
	PhoneType      string `json:"phone_type"`
	OrganizationID int64  `json:"organization_id"`
}

// ValidatePhoneNumber checks num against a loose E.164 shape: an optional
// leading '+', 7 to 15 digits, with spaces, dashes and parentheses allowed
// as separators.
func ValidatePhoneNumber(num string) error {
	if num == "" {
		return ErrMissingNumber
	}

	if len(num) > 30 {
		return ErrFieldTooLong("number", 30)
	}

	digits := 0

	for i := 0; i < len(num); i++ {
		c := num[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '+':
			if i != 0 {
				return fmt.Errorf("'+' is only allowed as the first character")
			}
		case c == ' ', c == '-', c == '(', c == ')':
		default:
			return fmt.Errorf("number contains invalid character %q", c)
		}
	}

	if digits < 7 || digits > 15 {
		return fmt.Errorf("number must contain 7 to 15 digits, got %d", digits)
	}

	return nil
}

// CreatePhoneNumberRequest is the payload for creating a phone number.
// The referenced organization must exist.
type CreatePhoneNumberRequest struct {
	Number         string `json:"number"`
	PhoneType      string `json:"phone_type,omitempty"`
	OrganizationID int64  `json:"organization_id"`
}

// Validate checks the number shape and applies the default phone type.
func (r *CreatePhoneNumberRequest) Validate() error {
	if err := ValidatePhoneNumber(r.Number); err != nil {
		return err
	}

	if r.PhoneType == "" {
		r.PhoneType = DefaultPhoneType
	}

	if len(r.PhoneType) > 30 {
		return ErrFieldTooLong("phone_type", 30)
	}

	if r.OrganizationID == 0 {
		return fmt.Errorf("organization_id is required")
	}

	return nil
}

// UpdatePhoneNumberRequest is the payload for partially updating a phone
// number. Nil fields are left unchanged. A non-nil OrganizationID re-parents
// the number; the target organization must exist.
type UpdatePhoneNumberRequest struct {
	Number         *string `json:"number,omitempty"`
	PhoneType      *string `json:"phone_type,omitempty"`
	OrganizationID *int64  `json:"organization_id,omitempty"`
}

// Validate checks the supplied fields of UpdatePhoneNumberRequest.
func (r *UpdatePhoneNumberRequest) Validate() error {
	if r.Number != nil {
		if err := ValidatePhoneNumber(*r.Number); err != nil {
			return err
		}
	}

	if r.PhoneType != nil && len(*r.PhoneType) > 30 {
		return ErrFieldTooLong("phone_type", 30)
	}

	return nil
}
