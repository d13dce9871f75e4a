package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/orgatlas/orgatlas/internal/models"
)

// OrganizationStore handles organization CRUD, geospatial lookups via the
// owning building, and category-path lookups. Reads always return
// organizations with phone numbers and categories populated.
type OrganizationStore struct {
	Base
}

// NewOrganizationStore creates a new OrganizationStore.
func NewOrganizationStore(base Base) *OrganizationStore {
	return &OrganizationStore{Base: base}
}

// buildingExists checks whether a building row exists within tx.
func buildingExists(ctx context.Context, tx pgx.Tx, buildingID int64) error {
	var id int64

	err := tx.QueryRow(ctx, "SELECT id FROM building WHERE id = $1", buildingID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrBuildingNotFound
	} else if err != nil {
		return fmt.Errorf("checking building existence: %w", err)
	}

	return nil
}

// CreateOrganization inserts a new organization with its initial phone
// number and category association sets. Fails with
// models.ErrBuildingNotFound when the building does not exist; unknown
// phone number and category ids are silently dropped.
func (s *OrganizationStore) CreateOrganization(
	ctx context.Context,
	req models.CreateOrganizationRequest,
) (*models.Organization, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if err := buildingExists(ctx, tx, req.BuildingID); err != nil {
		return nil, err
	}

	query := `INSERT INTO organization (name, building_id)
		VALUES ($1, $2)
		RETURNING ` + organizationColumns

	row := tx.QueryRow(ctx, query, req.Name, req.BuildingID)

	o, err := scanOrganization(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning created organization: %w", err)
	}

	if len(req.BusinessCategoryIDs) > 0 {
		if err := replaceOrganizationCategories(ctx, tx, o.ID, req.BusinessCategoryIDs); err != nil {
			return nil, err
		}
	}

	if len(req.PhoneNumberIDs) > 0 {
		if err := replaceOrganizationPhones(ctx, tx, o.ID, req.PhoneNumberIDs); err != nil {
			return nil, err
		}
	}

	orgs := []models.Organization{*o}
	if err := loadOrganizationRelations(ctx, tx, orgs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing create organization: %w", err)
	}

	return &orgs[0], nil
}

// getOrganizationTx fetches one organization with relations within tx.
func getOrganizationTx(ctx context.Context, tx pgx.Tx, id int64) (*models.Organization, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organization WHERE id = $1`, id)

	o, err := scanOrganization(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrganizationNotFound
		}

		return nil, fmt.Errorf("scanning organization: %w", err)
	}

	orgs := []models.Organization{*o}
	if err := loadOrganizationRelations(ctx, tx, orgs); err != nil {
		return nil, err
	}

	return &orgs[0], nil
}

// GetOrganization retrieves a single organization by ID with its phone
// numbers and categories.
func (s *OrganizationStore) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	o, err := getOrganizationTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing get organization: %w", err)
	}

	return o, nil
}

// GetOrganizationByName retrieves an organization by its exact name.
func (s *OrganizationStore) GetOrganizationByName(ctx context.Context, name string) (*models.Organization, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting organization by name: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	row := tx.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organization WHERE name = $1 ORDER BY id LIMIT 1`, name)

	o, err := scanOrganization(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrganizationNotFound
		}

		return nil, fmt.Errorf("scanning organization: %w", err)
	}

	orgs := []models.Organization{*o}
	if err := loadOrganizationRelations(ctx, tx, orgs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing get organization by name: %w", err)
	}

	return &orgs[0], nil
}

// listOrganizations runs a filtered organization query within a read
// transaction and attaches relations to every result.
func (s *OrganizationStore) listOrganizations(
	ctx context.Context,
	opName, where string,
	args ...any,
) ([]models.Organization, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	rows, err := tx.Query(ctx, where, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opName, err)
	}

	orgs, err := collectOrganizations(rows)
	if err != nil {
		return nil, err
	}

	if err := loadOrganizationRelations(ctx, tx, orgs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: committing: %w", opName, err)
	}

	return orgs, nil
}

// ListOrganizations returns organizations with offset/limit pagination.
func (s *OrganizationStore) ListOrganizations(ctx context.Context, limit, offset int) ([]models.Organization, error) {
	limit, offset = clampPage(limit, offset)

	query := `SELECT ` + organizationColumns + ` FROM organization ORDER BY id LIMIT $1 OFFSET $2`

	return s.listOrganizations(ctx, "listing organizations", query, limit, offset)
}

// ListOrganizationsByBuilding returns all organizations located in the
// given building.
func (s *OrganizationStore) ListOrganizationsByBuilding(ctx context.Context, buildingID int64) ([]models.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization WHERE building_id = $1 ORDER BY id`

	return s.listOrganizations(ctx, "listing organizations by building", query, buildingID)
}

// FindOrganizationsByCategoryPath returns organizations tagged with the
// category at path or any of its descendants. An organization tagged with
// several matching categories appears once.
func (s *OrganizationStore) FindOrganizationsByCategoryPath(ctx context.Context, path string) ([]models.Organization, error) {
	query := `SELECT DISTINCT o.id, o.name, o.building_id
		FROM organization o
		JOIN organization_business_category oc ON oc.organization_id = o.id
		JOIN business_category bc ON bc.id = oc.category_id
		WHERE ` + pathDescendantPredicate("bc.path", 1) + `
		ORDER BY o.id`

	return s.listOrganizations(ctx, "finding organizations by category path", query, path)
}

// FindOrganizationsInRadius returns organizations whose building lies
// within radius_meters of the query center, measured geodesically.
func (s *OrganizationStore) FindOrganizationsInRadius(
	ctx context.Context,
	q models.RadiusQuery,
) ([]models.Organization, error) {
	query := `SELECT o.id, o.name, o.building_id
		FROM organization o
		JOIN building b ON b.id = o.building_id
		WHERE ` + radiusPredicate("b.location", 1) + `
		ORDER BY o.id`

	return s.listOrganizations(ctx, "finding organizations in radius", query, radiusArgs(q)...)
}

// FindOrganizationsInBBox returns organizations whose building intersects
// the axis-aligned envelope spanned by the two query corners.
func (s *OrganizationStore) FindOrganizationsInBBox(
	ctx context.Context,
	q models.BBoxQuery,
) ([]models.Organization, error) {
	query := `SELECT o.id, o.name, o.building_id
		FROM organization o
		JOIN building b ON b.id = o.building_id
		WHERE ` + bboxPredicate("b.location", 1) + `
		ORDER BY o.id`

	return s.listOrganizations(ctx, "finding organizations in bbox", query, bboxArgs(q)...)
}

// UpdateOrganization applies the supplied fields to an existing
// organization. A supplied building_id must reference an existing
// building; supplied id lists replace the full association sets.
func (s *OrganizationStore) UpdateOrganization(
	ctx context.Context,
	id int64,
	req models.UpdateOrganizationRequest,
) (*models.Organization, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
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

	if req.BuildingID != nil {
		if err := buildingExists(ctx, tx, *req.BuildingID); err != nil {
			return nil, err
		}

		setClauses = append(setClauses, fmt.Sprintf("building_id = $%d", argIdx))
		args = append(args, *req.BuildingID)
		argIdx++
	}

	if len(setClauses) > 0 {
		query := fmt.Sprintf(
			"UPDATE organization SET %s WHERE id = $%d RETURNING id",
			strings.Join(setClauses, ", "),
			argIdx,
		)
		args = append(args, id)

		var updatedID int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, models.ErrOrganizationNotFound
			}

			return nil, fmt.Errorf("scanning updated organization: %w", err)
		}
	} else {
		// Still verify existence so association-only updates 404 properly.
		if err := orgExists(ctx, tx, id); err != nil {
			return nil, err
		}
	}

	if req.BusinessCategoryIDs != nil {
		if err := replaceOrganizationCategories(ctx, tx, id, *req.BusinessCategoryIDs); err != nil {
			return nil, err
		}
	}

	if req.PhoneNumberIDs != nil {
		if err := replaceOrganizationPhones(ctx, tx, id, *req.PhoneNumberIDs); err != nil {
			return nil, err
		}
	}

	o, err := getOrganizationTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing update organization: %w", err)
	}

	return o, nil
}

// DeleteOrganization removes an organization, its phone numbers and its
// category join rows within one transaction. Categories themselves are
// never deleted.
func (s *OrganizationStore) DeleteOrganization(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	_, err = tx.Exec(ctx, "DELETE FROM phone_number WHERE organization_id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting organization phone numbers: %w", err)
	}

	_, err = tx.Exec(ctx, "DELETE FROM organization_business_category WHERE organization_id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting organization category links: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM organization WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing organization delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrOrganizationNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete organization: %w", err)
	}

	return nil
}
