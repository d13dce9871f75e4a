package store

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/orgatlas/orgatlas/internal/models"
)

// buildingColumns lists the columns selected for building queries. The
// point column is decomposed into longitude/latitude on the way out.
const buildingColumns = `id, address, ST_X(location), ST_Y(location)`

// organizationColumns lists the columns selected for organization queries.
const organizationColumns = `id, name, building_id`

// phoneColumns lists the columns selected for phone number queries.
const phoneColumns = `id, number, phone_type, organization_id`

// categoryColumns lists the columns selected for business category queries.
// path is an ltree value; the text cast keeps the scan a plain string.
const categoryColumns = `id, name, path::text`

// scanBuilding scans a single row into a models.Building.
func scanBuilding(scan func(dest ...any) error) (*models.Building, error) {
	var b models.Building
	var lon, lat float64

	if err := scan(&b.ID, &b.Address, &lon, &lat); err != nil {
		return nil, err
	}

	b.Location = models.NewCoordinate(lon, lat)

	return &b, nil
}

// scanOrganization scans a single row into a models.Organization.
// Relations start empty; callers attach them via loadOrganizationRelations.
func scanOrganization(scan func(dest ...any) error) (*models.Organization, error) {
	var o models.Organization

	if err := scan(&o.ID, &o.Name, &o.BuildingID); err != nil {
		return nil, err
	}

	o.PhoneNumbers = []models.PhoneNumber{}
	o.BusinessCategories = []models.BusinessCategory{}

	return &o, nil
}

// scanPhoneNumber scans a single row into a models.PhoneNumber.
func scanPhoneNumber(scan func(dest ...any) error) (*models.PhoneNumber, error) {
	var p models.PhoneNumber

	if err := scan(&p.ID, &p.Number, &p.PhoneType, &p.OrganizationID); err != nil {
		return nil, err
	}

	return &p, nil
}

// scanCategory scans a single row into a models.BusinessCategory.
func scanCategory(scan func(dest ...any) error) (*models.BusinessCategory, error) {
	var c models.BusinessCategory

	if err := scan(&c.ID, &c.Name, &c.Path); err != nil {
		return nil, err
	}

	return &c, nil
}

// collectBuildings scans all rows into a building slice.
func collectBuildings(rows pgx.Rows) ([]models.Building, error) {
	buildings := make([]models.Building, 0, 16)

	for rows.Next() {
		b, err := scanBuilding(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning building row: %w", err)
		}

		buildings = append(buildings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating building rows: %w", err)
	}

	return buildings, nil
}

// collectOrganizations scans all rows into an organization slice.
func collectOrganizations(rows pgx.Rows) ([]models.Organization, error) {
	orgs := make([]models.Organization, 0, 16)

	for rows.Next() {
		o, err := scanOrganization(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning organization row: %w", err)
		}

		orgs = append(orgs, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organization rows: %w", err)
	}

	return orgs, nil
}

// collectPhoneNumbers scans all rows into a phone number slice.
func collectPhoneNumbers(rows pgx.Rows) ([]models.PhoneNumber, error) {
	phones := make([]models.PhoneNumber, 0, 16)

	for rows.Next() {
		p, err := scanPhoneNumber(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning phone number row: %w", err)
		}

		phones = append(phones, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phone number rows: %w", err)
	}

	return phones, nil
}

// collectCategories scans all rows into a category slice.
func collectCategories(rows pgx.Rows) ([]models.BusinessCategory, error) {
	categories := make([]models.BusinessCategory, 0, 16)

	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}

		categories = append(categories, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}
