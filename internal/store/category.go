package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/orgatlas/orgatlas/internal/models"
)

// CategoryStore handles business category CRUD and path lookups.
type CategoryStore struct {
	Base
}

// NewCategoryStore creates a new CategoryStore.
func NewCategoryStore(base Base) *CategoryStore {
	return &CategoryStore{Base: base}
}

// CreateCategory inserts a new business category and links the given
// organizations as its initial association set. Fails with
// models.ErrCategoryPathExists if the path is already taken; unknown
// organization ids are silently dropped.
func (s *CategoryStore) CreateCategory(
	ctx context.Context,
	req models.CreateCategoryRequest,
) (*models.BusinessCategory, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	var existing int64

	err = tx.QueryRow(ctx, "SELECT id FROM business_category WHERE path = $1::ltree", req.Path).Scan(&existing)
	if err == nil {
		return nil, models.ErrCategoryPathExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("checking path uniqueness: %w", err)
	}

	query := `INSERT INTO business_category (name, path)
		VALUES ($1, $2::ltree)
		RETURNING ` + categoryColumns

	row := tx.QueryRow(ctx, query, req.Name, req.Path)

	c, err := scanCategory(row.Scan)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrCategoryPathExists
		}

		return nil, fmt.Errorf("scanning created category: %w", err)
	}

	if len(req.OrganizationIDs) > 0 {
		if err := replaceCategoryOrganizations(ctx, tx, c.ID, req.OrganizationIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrCategoryPathExists
		}

		return nil, fmt.Errorf("committing create category: %w", err)
	}

	return c, nil
}

// GetCategory retrieves a single category by ID.
func (s *CategoryStore) GetCategory(ctx context.Context, id int64) (*models.BusinessCategory, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM business_category WHERE id = $1`

	row := s.Pool.QueryRow(ctx, query, id)

	c, err := scanCategory(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("scanning category: %w", err)
	}

	return c, nil
}

// GetCategoryByPath retrieves a single category by its exact path.
func (s *CategoryStore) GetCategoryByPath(ctx context.Context, path string) (*models.BusinessCategory, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM business_category WHERE path = $1::ltree`

	row := s.Pool.QueryRow(ctx, query, path)

	c, err := scanCategory(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("scanning category: %w", err)
	}

	return c, nil
}

// ListCategories returns categories with offset/limit pagination.
func (s *CategoryStore) ListCategories(ctx context.Context, limit, offset int) ([]models.BusinessCategory, error) {
	limit, offset = clampPage(limit, offset)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM business_category ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := s.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	return collectCategories(rows)
}

// UpdateCategory applies the supplied fields to an existing category.
// A path change is checked for uniqueness excluding the category itself;
// a supplied organization id list replaces the whole association set.
func (s *CategoryStore) UpdateCategory(
	ctx context.Context,
	id int64,
	req models.UpdateCategoryRequest,
) (*models.BusinessCategory, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	setClauses := make([]string, 0, 2)
	args := make([]any, 0, 3)
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}

	if req.Path != nil {
		var existing int64

		err = tx.QueryRow(ctx,
			"SELECT id FROM business_category WHERE path = $1::ltree AND id != $2",
			*req.Path, id).Scan(&existing)
		if err == nil {
			return nil, models.ErrCategoryPathExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("checking path uniqueness: %w", err)
		}

		setClauses = append(setClauses, fmt.Sprintf("path = $%d::ltree", argIdx))
		args = append(args, *req.Path)
		argIdx++
	}

	var c *models.BusinessCategory

	if len(setClauses) > 0 {
		query := fmt.Sprintf(
			"UPDATE business_category SET %s WHERE id = $%d RETURNING %s",
			strings.Join(setClauses, ", "),
			argIdx,
			categoryColumns,
		)
		args = append(args, id)

		row := tx.QueryRow(ctx, query, args...)

		c, err = scanCategory(row.Scan)
	} else {
		row := tx.QueryRow(ctx,
			`SELECT `+categoryColumns+` FROM business_category WHERE id = $1`, id)

		c, err = scanCategory(row.Scan)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("scanning updated category: %w", err)
	}

	if req.OrganizationIDs != nil {
		if err := replaceCategoryOrganizations(ctx, tx, c.ID, *req.OrganizationIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrCategoryPathExists
		}

		return nil, fmt.Errorf("committing update category: %w", err)
	}

	return c, nil
}

// DeleteCategory removes a category by ID. Join rows to organizations are
// removed by the cascade; organizations themselves are untouched.
func (s *CategoryStore) DeleteCategory(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM business_category WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing category delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrCategoryNotFound
	}

	return nil
}
