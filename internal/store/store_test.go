package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/db"
	"github.com/orgatlas/orgatlas/internal/db/migrations"
	"github.com/orgatlas/orgatlas/internal/dbpool"
	"github.com/orgatlas/orgatlas/internal/models"
	"github.com/orgatlas/orgatlas/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		t.Fatalf("migrating test DB: %v", err)
	}

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase creates a Base over an empty schema. Tests share one
// database, so they must not run in parallel with each other.
func setupTestBase(t *testing.T) store.Base {
	t.Helper()

	env := getTestEnv(t)
	ctx := context.Background()

	_, err := env.pool.Exec(ctx,
		`TRUNCATE organization_business_category, phone_number,
		organization, business_category, building RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncating test tables: %v", err)
	}

	return store.Base{Pool: env.pool, Log: env.log}
}

// mustCreateBuilding inserts a building or fails the test.
func mustCreateBuilding(t *testing.T, base store.Base, address string, lon, lat float64) *models.Building {
	t.Helper()

	bs := store.NewBuildingStore(base)

	b, err := bs.CreateBuilding(context.Background(), models.CreateBuildingRequest{
		Address:  address,
		Location: models.NewCoordinate(lon, lat),
	})
	if err != nil {
		t.Fatalf("CreateBuilding(%q): %v", address, err)
	}

	return b
}

// mustCreateOrganization inserts an organization or fails the test.
func mustCreateOrganization(t *testing.T, base store.Base, name string, buildingID int64) *models.Organization {
	t.Helper()

	os := store.NewOrganizationStore(base)

	o, err := os.CreateOrganization(context.Background(), models.CreateOrganizationRequest{
		Name:       name,
		BuildingID: buildingID,
	})
	if err != nil {
		t.Fatalf("CreateOrganization(%q): %v", name, err)
	}

	return o
}

// mustCreateCategory inserts a business category or fails the test.
func mustCreateCategory(t *testing.T, base store.Base, name, path string, orgIDs ...int64) *models.BusinessCategory {
	t.Helper()

	cs := store.NewCategoryStore(base)

	c, err := cs.CreateCategory(context.Background(), models.CreateCategoryRequest{
		Name:            name,
		Path:            path,
		OrganizationIDs: orgIDs,
	})
	if err != nil {
		t.Fatalf("CreateCategory(%q): %v", path, err)
	}

	return c
}
