package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/orgatlas/orgatlas/internal/models"
)

// Relation helpers shared by the organization and category stores.
//
// Association-set writes are full replacements: delete everything, then
// insert the resolved set, inside the caller's transaction. Id lists are
// resolved with INSERT ... SELECT ... WHERE id = ANY($n), so ids that do
// not exist are silently dropped rather than rejected.

// loadOrganizationRelations populates PhoneNumbers and BusinessCategories
// for every organization in orgs, using two set-based queries within tx.
func loadOrganizationRelations(ctx context.Context, tx pgx.Tx, orgs []models.Organization) error {
	if len(orgs) == 0 {
		return nil
	}

	ids := make([]int64, len(orgs))
	byID := make(map[int64]*models.Organization, len(orgs))

	for i := range orgs {
		ids[i] = orgs[i].ID
		byID[orgs[i].ID] = &orgs[i]
	}

	rows, err := tx.Query(ctx,
		`SELECT `+phoneColumns+` FROM phone_number WHERE organization_id = ANY($1) ORDER BY id`,
		ids)
	if err != nil {
		return fmt.Errorf("querying organization phone numbers: %w", err)
	}

	phones, err := collectPhoneNumbers(rows)
	if err != nil {
		return err
	}

	for _, p := range phones {
		org := byID[p.OrganizationID]
		org.PhoneNumbers = append(org.PhoneNumbers, p)
	}

	rows, err = tx.Query(ctx,
		`SELECT oc.organization_id, bc.id, bc.name, bc.path::text
		FROM organization_business_category oc
		JOIN business_category bc ON bc.id = oc.category_id
		WHERE oc.organization_id = ANY($1)
		ORDER BY bc.id`,
		ids)
	if err != nil {
		return fmt.Errorf("querying organization categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orgID int64
		var c models.BusinessCategory

		if err := rows.Scan(&orgID, &c.ID, &c.Name, &c.Path); err != nil {
			return fmt.Errorf("scanning organization category row: %w", err)
		}

		org := byID[orgID]
		org.BusinessCategories = append(org.BusinessCategories, c)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating organization category rows: %w", err)
	}

	return nil
}

// replaceOrganizationCategories replaces the category association set of
// one organization.
func replaceOrganizationCategories(ctx context.Context, tx pgx.Tx, orgID int64, categoryIDs []int64) error {
	_, err := tx.Exec(ctx,
		"DELETE FROM organization_business_category WHERE organization_id = $1", orgID)
	if err != nil {
		return fmt.Errorf("clearing organization categories: %w", err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO organization_business_category (organization_id, category_id)
		SELECT $1, id FROM business_category WHERE id = ANY($2)`,
		orgID, categoryIDs)
	if err != nil {
		return fmt.Errorf("inserting organization categories: %w", err)
	}

	return nil
}

// replaceCategoryOrganizations replaces the organization association set of
// one category.
func replaceCategoryOrganizations(ctx context.Context, tx pgx.Tx, categoryID int64, orgIDs []int64) error {
	_, err := tx.Exec(ctx,
		"DELETE FROM organization_business_category WHERE category_id = $1", categoryID)
	if err != nil {
		return fmt.Errorf("clearing category organizations: %w", err)
	}

	if len(orgIDs) == 0 {
		return nil
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO organization_business_category (organization_id, category_id)
		SELECT id, $1 FROM organization WHERE id = ANY($2)`,
		categoryID, orgIDs)
	if err != nil {
		return fmt.Errorf("inserting category organizations: %w", err)
	}

	return nil
}

// replaceOrganizationPhones replaces the phone-number set of one
// organization. Numbers dropped from the set are deleted, since a phone
// number cannot exist without an owner, and numbers in the set are re-parented
// to this organization.
func replaceOrganizationPhones(ctx context.Context, tx pgx.Tx, orgID int64, phoneIDs []int64) error {
	_, err := tx.Exec(ctx,
		"DELETE FROM phone_number WHERE organization_id = $1 AND NOT (id = ANY($2))",
		orgID, phoneIDs)
	if err != nil {
		return fmt.Errorf("deleting dropped phone numbers: %w", err)
	}

	if len(phoneIDs) == 0 {
		return nil
	}

	_, err = tx.Exec(ctx,
		"UPDATE phone_number SET organization_id = $1 WHERE id = ANY($2)",
		orgID, phoneIDs)
	if err != nil {
		return fmt.Errorf("re-parenting phone numbers: %w", err)
	}

	return nil
}
