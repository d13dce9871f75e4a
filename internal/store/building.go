package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/orgatlas/orgatlas/internal/models"
)

// BuildingStore handles building CRUD and geospatial lookups.
type BuildingStore struct {
	Base
}

// NewBuildingStore creates a new BuildingStore.
func NewBuildingStore(base Base) *BuildingStore {
	return &BuildingStore{Base: base}
}

// CreateBuilding inserts a new building and returns the created record.
// Fails with models.ErrAddressExists if the address is already taken.
func (s *BuildingStore) CreateBuilding(
	ctx context.Context,
	req models.CreateBuildingRequest,
) (*models.Building, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating building: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	var existing int64

	err = tx.QueryRow(ctx, "SELECT id FROM building WHERE address = $1", req.Address).Scan(&existing)
	if err == nil {
		return nil, models.ErrAddressExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("checking address uniqueness: %w", err)
	}

	query := `INSERT INTO building (address, location)
		VALUES ($1, ` + pointExpr(2) + `)
		RETURNING ` + buildingColumns

	row := tx.QueryRow(ctx, query, req.Address, req.Location.Lon(), req.Location.Lat())

	b, err := scanBuilding(row.Scan)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrAddressExists
		}

		return nil, fmt.Errorf("scanning created building: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrAddressExists
		}

		return nil, fmt.Errorf("committing create building: %w", err)
	}

	return b, nil
}

// GetBuilding retrieves a single building by ID.
func (s *BuildingStore) GetBuilding(ctx context.Context, id int64) (*models.Building, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + buildingColumns + ` FROM building WHERE id = $1`

	row := s.Pool.QueryRow(ctx, query, id)

	b, err := scanBuilding(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBuildingNotFound
		}

		return nil, fmt.Errorf("scanning building: %w", err)
	}

	return b, nil
}

// ListBuildings returns buildings with offset/limit pagination.
func (s *BuildingStore) ListBuildings(ctx context.Context, limit, offset int) ([]models.Building, error) {
	limit, offset = clampPage(limit, offset)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + buildingColumns + ` FROM building ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := s.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying buildings: %w", err)
	}
	defer rows.Close()

	return collectBuildings(rows)
}

// UpdateBuilding applies the supplied fields to an existing building.
// An address change is checked for uniqueness excluding the building itself.
func (s *BuildingStore) UpdateBuilding(
	ctx context.Context,
	id int64,
	req models.UpdateBuildingRequest,
) (*models.Building, error) {
	if req.Address == nil && req.Location == nil {
		return s.GetBuilding(ctx, id)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating building: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	setClauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	argIdx := 1

	if req.Address != nil {
		var existing int64

		err = tx.QueryRow(ctx,
			"SELECT id FROM building WHERE address = $1 AND id != $2",
			*req.Address, id).Scan(&existing)
		if err == nil {
			return nil, models.ErrAddressExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("checking address uniqueness: %w", err)
		}

		setClauses = append(setClauses, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}

	if req.Location != nil {
		setClauses = append(setClauses, "location = "+pointExpr(argIdx))
		args = append(args, req.Location.Lon(), req.Location.Lat())
		argIdx += 2
	}

	query := fmt.Sprintf(
		"UPDATE building SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "),
		argIdx,
		buildingColumns,
	)
	args = append(args, id)

	row := tx.QueryRow(ctx, query, args...)

	b, err := scanBuilding(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrBuildingNotFound
		}

		return nil, fmt.Errorf("scanning updated building: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrAddressExists
		}

		return nil, fmt.Errorf("committing update building: %w", err)
	}

	return b, nil
}

// DeleteBuilding removes a building by ID. The delete is attempted without
// a prior dependents check; a foreign-key violation from still-attached
// organizations rolls back and surfaces as models.ErrOrganizationsExist.
func (s *BuildingStore) DeleteBuilding(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("deleting building: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	tag, err := tx.Exec(ctx, "DELETE FROM building WHERE id = $1", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ErrOrganizationsExist
		}

		return fmt.Errorf("executing building delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrBuildingNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		if isForeignKeyViolation(err) {
			return models.ErrOrganizationsExist
		}

		return fmt.Errorf("committing delete building: %w", err)
	}

	return nil
}

// FindBuildingsInRadius returns buildings whose point lies within
// radius_meters of the query center, measured geodesically.
func (s *BuildingStore) FindBuildingsInRadius(
	ctx context.Context,
	q models.RadiusQuery,
) ([]models.Building, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + buildingColumns + ` FROM building WHERE ` +
		radiusPredicate("location", 1) + ` ORDER BY id`

	rows, err := s.Pool.Query(ctx, query, radiusArgs(q)...)
	if err != nil {
		return nil, fmt.Errorf("querying buildings in radius: %w", err)
	}
	defer rows.Close()

	return collectBuildings(rows)
}

// FindBuildingsInBBox returns buildings whose point intersects the
// axis-aligned envelope spanned by the two query corners.
func (s *BuildingStore) FindBuildingsInBBox(
	ctx context.Context,
	q models.BBoxQuery,
) ([]models.Building, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + buildingColumns + ` FROM building WHERE ` +
		bboxPredicate("location", 1) + ` ORDER BY id`

	rows, err := s.Pool.Query(ctx, query, bboxArgs(q)...)
	if err != nil {
		return nil, fmt.Errorf("querying buildings in bbox: %w", err)
	}
	defer rows.Close()

	return collectBuildings(rows)
}
