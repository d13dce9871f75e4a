package models

import "fmt"

// maxPathDepth caps category paths at three dot-separated labels.
// The same limit is enforced in the database as a CHECK on nlevel(path).
const maxPathDepth = 3

// BusinessCategory is a named node in the category tree. Path is an ltree
// value such as "food.fast.pizza" and is globally unique.
type BusinessCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// ValidateCategoryPath checks that path is a well-formed ltree value of at
// most three labels. Labels are lowercase ASCII letters, digits and
// underscores, matching what Postgres ltree accepts without quoting.
func ValidateCategoryPath(path string) error {
	if path == "" {
		return ErrMissingPath
	}

	if len(path) > 255 {
		return ErrFieldTooLong("path", 255)
	}

	depth := 1
	labelLen := 0

	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '.':
			if labelLen == 0 {
				return fmt.Errorf("path contains an empty label: %q", path)
			}

			depth++
			labelLen = 0
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
			labelLen++
		default:
			return fmt.Errorf("path contains invalid character %q", c)
		}
	}

	if labelLen == 0 {
		return fmt.Errorf("path contains an empty label: %q", path)
	}

	if depth > maxPathDepth {
		return fmt.Errorf("path depth %d exceeds maximum of %d", depth, maxPathDepth)
	}

	return nil
}

// CreateCategoryRequest is the payload for creating a business category.
// OrganizationIDs becomes the initial association set; unknown ids are
// silently dropped.
type CreateCategoryRequest struct {
	Name            string  `json:"name"`
	Path            string  `json:"path"`
	OrganizationIDs []int64 `json:"organization_ids,omitempty"`
}

// Validate checks required fields and the path shape.
func (r *CreateCategoryRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	return ValidateCategoryPath(r.Path)
}

// UpdateCategoryRequest is the payload for partially updating a category.
// Nil fields are left unchanged; a non-nil OrganizationIDs replaces the
// whole association set (an empty slice clears it).
type UpdateCategoryRequest struct {
	Name            *string  `json:"name,omitempty"`
	Path            *string  `json:"path,omitempty"`
	OrganizationIDs *[]int64 `json:"organization_ids,omitempty"`
}

// Validate checks the supplied fields of UpdateCategoryRequest.
func (r *UpdateCategoryRequest) Validate() error {
	if r.Name != nil {
		if *r.Name == "" {
			return ErrMissingName
		}

		if len(*r.Name) > 255 {
			return ErrFieldTooLong("name", 255)
		}
	}

	if r.Path != nil {
		return ValidateCategoryPath(*r.Path)
	}

	return nil
}
