package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/orgatlas/orgatlas/internal/models"
)

// PhoneStore handles phone number CRUD operations.
type PhoneStore struct {
	Base
}

// NewPhoneStore creates a new PhoneStore.
func NewPhoneStore(base Base) *PhoneStore {
	return &PhoneStore{Base: base}
}

// orgExists checks whether an organization row exists within tx.
func orgExists(ctx context.Context, tx pgx.Tx, orgID int64) error {
	var id int64

	err := tx.QueryRow(ctx, "SELECT id FROM organization WHERE id = $1", orgID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrOrganizationNotFound
	} else if err != nil {
		return fmt.Errorf("checking organization existence: %w", err)
	}

	return nil
}

// CreatePhoneNumber inserts a new phone number for an existing
// organization. Fails with models.ErrOrganizationNotFound when the
// referenced organization does not exist.
func (s *PhoneStore) CreatePhoneNumber(
	ctx context.Context,
	req models.CreatePhoneNumberRequest,
) (*models.PhoneNumber, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating phone number: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if err := orgExists(ctx, tx, req.OrganizationID); err != nil {
		return nil, err
	}

	query := `INSERT INTO phone_number (number, phone_type, organization_id)
		VALUES ($1, $2, $3)
		RETURNING ` + phoneColumns

	row := tx.QueryRow(ctx, query, req.Number, req.PhoneType, req.OrganizationID)

	p, err := scanPhoneNumber(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning created phone number: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing create phone number: %w", err)
	}

	return p, nil
}

// GetPhoneNumber retrieves a single phone number by ID.
func (s *PhoneStore) GetPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + phoneColumns + ` FROM phone_number WHERE id = $1`

	row := s.Pool.QueryRow(ctx, query, id)

	p, err := scanPhoneNumber(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPhoneNumberNotFound
		}

		return nil, fmt.Errorf("scanning phone number: %w", err)
	}

	return p, nil
}

// ListPhoneNumbers returns phone numbers with offset/limit pagination.
func (s *PhoneStore) ListPhoneNumbers(ctx context.Context, limit, offset int) ([]models.PhoneNumber, error) {
	limit, offset = clampPage(limit, offset)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + phoneColumns + ` FROM phone_number ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := s.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying phone numbers: %w", err)
	}
	defer rows.Close()

	return collectPhoneNumbers(rows)
}

// UpdatePhoneNumber applies the supplied fields to an existing phone
// number. A supplied organization_id re-parents the number and must
// reference an existing organization.
func (s *PhoneStore) UpdatePhoneNumber(
	ctx context.Context,
	id int64,
	req models.UpdatePhoneNumberRequest,
) (*models.PhoneNumber, error) {
	if req.Number == nil && req.PhoneType == nil && req.OrganizationID == nil {
		return s.GetPhoneNumber(ctx, id)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating phone number: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 4)
	argIdx := 1

	if req.Number != nil {
		setClauses = append(setClauses, fmt.Sprintf("number = $%d", argIdx))
		args = append(args, *req.Number)
		argIdx++
	}

	if req.PhoneType != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone_type = $%d", argIdx))
		args = append(args, *req.PhoneType)
		argIdx++
	}

	if req.OrganizationID != nil {
		if err := orgExists(ctx, tx, *req.OrganizationID); err != nil {
			return nil, err
		}

		setClauses = append(setClauses, fmt.Sprintf("organization_id = $%d", argIdx))
		args = append(args, *req.OrganizationID)
		argIdx++
	}

	query := fmt.Sprintf(
		"UPDATE phone_number SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "),
		argIdx,
		phoneColumns,
	)
	args = append(args, id)

	row := tx.QueryRow(ctx, query, args...)

	p, err := scanPhoneNumber(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPhoneNumberNotFound
		}

		return nil, fmt.Errorf("scanning updated phone number: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing update phone number: %w", err)
	}

	return p, nil
}

// DeletePhoneNumber removes a phone number by ID.
func (s *PhoneStore) DeletePhoneNumber(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM phone_number WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing phone number delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrPhoneNumberNotFound
	}

	return nil
}
