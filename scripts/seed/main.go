// Package main provides a standalone script that loads a small sample
// dataset (buildings, categories, organizations, phones) into orgatlas.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./scripts/seed
//
// The schema must already exist; the server applies migrations on startup.
// Re-running the script resets the sample rows.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

// seedBuilding is one sample building row.
type seedBuilding struct {
	Address string
	Lon     float64
	Lat     float64
}

// seedCategory is one sample category row.
type seedCategory struct {
	Name string
	Path string
}

// seedPhone is one sample phone row.
type seedPhone struct {
	Number string
	Type   string
}

// seedOrg ties an organization to its building, phones, and category paths.
type seedOrg struct {
	Name     string
	Building int // index into buildings
	Phones   []seedPhone
	Paths    []string
}

var buildings = []seedBuilding{
	{"Мичуринский проспект, 31 к. 4", 37.496675, 55.694296},
	{"Улица Раменки, 16", 37.490337, 55.690246},
	{"Улица Раменки, 5", 37.494852, 55.692614},
	{"Мичуринский проспект, 1, 1 этаж", 37.504111, 55.694271},
	{"Улица Раменки, 19", 37.492733, 55.691169},
}

var categories = []seedCategory{
	{"Food", "food"},
	{"Fast Food", "food.fast"},
	{"Pizza", "food.fast.pizza"},
	{"Grocery", "food.grocery"},
	{"Restaurant", "food.restaurant"},
	{"Services", "services"},
	{"Repairs", "services.repairs"},
	{"Recreation", "recreation"},
	{"Sports", "recreation.sports"},
	{"Retail", "retail"},
	{"Books", "retail.books"},
	{"Clothes", "retail.clothes"},
	{"Tools", "retail.tools"},
}

var organizations = []seedOrg{
	{
		Name:     "Белый Кролик",
		Building: 0,
		Phones:   []seedPhone{{"+7-499-653-63-59", "main"}},
		Paths:    []string{"retail", "retail.books"},
	},
	{
		Name:     "Сервисный центр",
		Building: 0,
		Phones:   []seedPhone{{"+7-495-761-73-73", "main"}, {"+7-495-761-73-74", "backup"}},
		Paths:    []string{"services", "services.repairs"},
	},
	{
		Name:     "Дикси",
		Building: 1,
		Phones:   []seedPhone{{"+7-800-101-10-01", "hotline"}},
		Paths:    []string{"food.grocery"},
	},
	{
		Name:     "Нидия",
		Building: 1,
		Phones:   []seedPhone{{"+7-495-931-83-61", "main"}},
		Paths:    []string{"retail.clothes"},
	},
	{
		Name:     "Строймир",
		Building: 1,
		Paths:    []string{"retail.tools"},
	},
	{
		Name:     "Чайхона АЗИЯ ХАЛЯЛЬ",
		Building: 2,
		Phones:   []seedPhone{{"+7-925-433-30-06", "main"}},
		Paths:    []string{"food.restaurant"},
	},
	{
		Name:     "Папа Джонс",
		Building: 3,
		Phones:   []seedPhone{{"+7-964-628-63-14", "main"}},
		Paths:    []string{"food.fast", "food.fast.pizza"},
	},
	{
		Name:     "Спортивный комплекс Раменки",
		Building: 4,
		Phones:   []seedPhone{{"+7-499-444-14-78", "headquarters"}, {"+7-499-444-61-70", "office"}},
		Paths:    []string{"recreation.sports"},
	},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	start := time.Now()

	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		slog.Error("connecting to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := seed(ctx, conn); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding complete",
		"buildings", len(buildings),
		"categories", len(categories),
		"organizations", len(organizations),
		"duration", time.Since(start).String(),
	)
}

func seed(ctx context.Context, conn *pgx.Conn) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	slog.Info("clearing previous sample rows")
	for _, table := range []string{"organization_business_category", "phone_number", "organization", "business_category", "building"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	slog.Info("seeding buildings")
	buildingIDs := make([]int64, len(buildings))
	for i, b := range buildings {
		err := tx.QueryRow(ctx,
			`INSERT INTO building (address, location)
			 VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326))
			 RETURNING id`,
			b.Address, b.Lon, b.Lat,
		).Scan(&buildingIDs[i])
		if err != nil {
			return fmt.Errorf("insert building %q: %w", b.Address, err)
		}
	}

	slog.Info("seeding business categories")
	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO business_category (name, path) VALUES ($1, $2::ltree) RETURNING id`,
			c.Name, c.Path,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", c.Path, err)
		}
		categoryIDs[c.Path] = id
	}

	slog.Info("seeding organizations")
	for _, org := range organizations {
		var orgID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO organization (name, building_id) VALUES ($1, $2) RETURNING id`,
			org.Name, buildingIDs[org.Building],
		).Scan(&orgID)
		if err != nil {
			return fmt.Errorf("insert organization %q: %w", org.Name, err)
		}

		for _, p := range org.Phones {
			if _, err := tx.Exec(ctx,
				`INSERT INTO phone_number (number, phone_type, organization_id) VALUES ($1, $2, $3)`,
				p.Number, p.Type, orgID,
			); err != nil {
				return fmt.Errorf("insert phone %q: %w", p.Number, err)
			}
		}

		for _, path := range org.Paths {
			if _, err := tx.Exec(ctx,
				`INSERT INTO organization_business_category (organization_id, business_category_id)
				 VALUES ($1, $2)`,
				orgID, categoryIDs[path],
			); err != nil {
				return fmt.Errorf("link organization %q to %q: %w", org.Name, path, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
