package api_test

import (
	"context"

	"github.com/orgatlas/orgatlas/internal/models"
)

// mockBuildingRepo implements api.BuildingRepository for testing.
type mockBuildingRepo struct {
	createFn     func(ctx context.Context, req models.CreateBuildingRequest) (*models.Building, error)
	getFn        func(ctx context.Context, id int64) (*models.Building, error)
	listFn       func(ctx context.Context, limit, offset int) ([]models.Building, error)
	updateFn     func(ctx context.Context, id int64, req models.UpdateBuildingRequest) (*models.Building, error)
	deleteFn     func(ctx context.Context, id int64) error
	findRadiusFn func(ctx context.Context, q models.RadiusQuery) ([]models.Building, error)
	findBBoxFn   func(ctx context.Context, q models.BBoxQuery) ([]models.Building, error)
}

func (m *mockBuildingRepo) CreateBuilding(ctx context.Context, req models.CreateBuildingRequest) (*models.Building, error) {
	return m.createFn(ctx, req)
}

func (m *mockBuildingRepo) GetBuilding(ctx context.Context, id int64) (*models.Building, error) {
	return m.getFn(ctx, id)
}

func (m *mockBuildingRepo) ListBuildings(ctx context.Context, limit, offset int) ([]models.Building, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockBuildingRepo) UpdateBuilding(ctx context.Context, id int64, req models.UpdateBuildingRequest) (*models.Building, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockBuildingRepo) DeleteBuilding(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockBuildingRepo) FindBuildingsInRadius(ctx context.Context, q models.RadiusQuery) ([]models.Building, error) {
	return m.findRadiusFn(ctx, q)
}

func (m *mockBuildingRepo) FindBuildingsInBBox(ctx context.Context, q models.BBoxQuery) ([]models.Building, error) {
	return m.findBBoxFn(ctx, q)
}

// mockOrganizationRepo implements api.OrganizationRepository for testing.
type mockOrganizationRepo struct {
	createFn         func(ctx context.Context, req models.CreateOrganizationRequest) (*models.Organization, error)
	getFn            func(ctx context.Context, id int64) (*models.Organization, error)
	getByNameFn      func(ctx context.Context, name string) (*models.Organization, error)
	listFn           func(ctx context.Context, limit, offset int) ([]models.Organization, error)
	listByBuildingFn func(ctx context.Context, buildingID int64) ([]models.Organization, error)
	findByCategoryFn func(ctx context.Context, path string) ([]models.Organization, error)
	findRadiusFn     func(ctx context.Context, q models.RadiusQuery) ([]models.Organization, error)
	findBBoxFn       func(ctx context.Context, q models.BBoxQuery) ([]models.Organization, error)
	updateFn         func(ctx context.Context, id int64, req models.UpdateOrganizationRequest) (*models.Organization, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockOrganizationRepo) CreateOrganization(ctx context.Context, req models.CreateOrganizationRequest) (*models.Organization, error) {
	return m.createFn(ctx, req)
}

func (m *mockOrganizationRepo) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	return m.getFn(ctx, id)
}

func (m *mockOrganizationRepo) GetOrganizationByName(ctx context.Context, name string) (*models.Organization, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockOrganizationRepo) ListOrganizations(ctx context.Context, limit, offset int) ([]models.Organization, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockOrganizationRepo) ListOrganizationsByBuilding(ctx context.Context, buildingID int64) ([]models.Organization, error) {
	return m.listByBuildingFn(ctx, buildingID)
}

func (m *mockOrganizationRepo) FindOrganizationsByCategoryPath(ctx context.Context, path string) ([]models.Organization, error) {
	return m.findByCategoryFn(ctx, path)
}

func (m *mockOrganizationRepo) FindOrganizationsInRadius(ctx context.Context, q models.RadiusQuery) ([]models.Organization, error) {
	return m.findRadiusFn(ctx, q)
}

func (m *mockOrganizationRepo) FindOrganizationsInBBox(ctx context.Context, q models.BBoxQuery) ([]models.Organization, error) {
	return m.findBBoxFn(ctx, q)
}

func (m *mockOrganizationRepo) UpdateOrganization(ctx context.Context, id int64, req models.UpdateOrganizationRequest) (*models.Organization, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockOrganizationRepo) DeleteOrganization(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockPhoneRepo implements api.PhoneNumberRepository for testing.
type mockPhoneRepo struct {
	createFn func(ctx context.Context, req models.CreatePhoneNumberRequest) (*models.PhoneNumber, error)
	getFn    func(ctx context.Context, id int64) (*models.PhoneNumber, error)
	listFn   func(ctx context.Context, limit, offset int) ([]models.PhoneNumber, error)
	updateFn func(ctx context.Context, id int64, req models.UpdatePhoneNumberRequest) (*models.PhoneNumber, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockPhoneRepo) CreatePhoneNumber(ctx context.Context, req models.CreatePhoneNumberRequest) (*models.PhoneNumber, error) {
	return m.createFn(ctx, req)
}

func (m *mockPhoneRepo) GetPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error) {
	return m.getFn(ctx, id)
}

func (m *mockPhoneRepo) ListPhoneNumbers(ctx context.Context, limit, offset int) ([]models.PhoneNumber, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockPhoneRepo) UpdatePhoneNumber(ctx context.Context, id int64, req models.UpdatePhoneNumberRequest) (*models.PhoneNumber, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockPhoneRepo) DeletePhoneNumber(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockCategoryRepo implements api.CategoryRepository for testing.
type mockCategoryRepo struct {
	createFn    func(ctx context.Context, req models.CreateCategoryRequest) (*models.BusinessCategory, error)
	getFn       func(ctx context.Context, id int64) (*models.BusinessCategory, error)
	getByPathFn func(ctx context.Context, path string) (*models.BusinessCategory, error)
	listFn      func(ctx context.Context, limit, offset int) ([]models.BusinessCategory, error)
	updateFn    func(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.BusinessCategory, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.BusinessCategory, error) {
	return m.createFn(ctx, req)
}

func (m *mockCategoryRepo) GetCategory(ctx context.Context, id int64) (*models.BusinessCategory, error) {
	return m.getFn(ctx, id)
}

func (m *mockCategoryRepo) GetCategoryByPath(ctx context.Context, path string) (*models.BusinessCategory, error) {
	return m.getByPathFn(ctx, path)
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context, limit, offset int) ([]models.BusinessCategory, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.BusinessCategory, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
