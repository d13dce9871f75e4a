package api

import (
	"context"

	"github.com/orgatlas/orgatlas/internal/models"
)

// BuildingRepository defines building operations used by BuildingHandler.
type BuildingRepository interface {
	CreateBuilding(ctx context.Context, req models.CreateBuildingRequest) (*models.Building, error)
	GetBuilding(ctx context.Context, id int64) (*models.Building, error)
	ListBuildings(ctx context.Context, limit, offset int) ([]models.Building, error)
	UpdateBuilding(ctx context.Context, id int64, req models.UpdateBuildingRequest) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id int64) error
	FindBuildingsInRadius(ctx context.Context, q models.RadiusQuery) ([]models.Building, error)
	FindBuildingsInBBox(ctx context.Context, q models.BBoxQuery) ([]models.Building, error)
}

// OrganizationRepository defines organization operations used by OrganizationHandler.
type OrganizationRepository interface {
	CreateOrganization(ctx context.Context, req models.CreateOrganizationRequest) (*models.Organization, error)
	GetOrganization(ctx context.Context, id int64) (*models.Organization, error)
	GetOrganizationByName(ctx context.Context, name string) (*models.Organization, error)
	ListOrganizations(ctx context.Context, limit, offset int) ([]models.Organization, error)
	ListOrganizationsByBuilding(ctx context.Context, buildingID int64) ([]models.Organization, error)
	FindOrganizationsByCategoryPath(ctx context.Context, path string) ([]models.Organization, error)
	FindOrganizationsInRadius(ctx context.Context, q models.RadiusQuery) ([]models.Organization, error)
	FindOrganizationsInBBox(ctx context.Context, q models.BBoxQuery) ([]models.Organization, error)
	UpdateOrganization(ctx context.Context, id int64, req models.UpdateOrganizationRequest) (*models.Organization, error)
	DeleteOrganization(ctx context.Context, id int64) error
}

// PhoneNumberRepository defines phone number operations used by PhoneHandler.
type PhoneNumberRepository interface {
	CreatePhoneNumber(ctx context.Context, req models.CreatePhoneNumberRequest) (*models.PhoneNumber, error)
	GetPhoneNumber(ctx context.Context, id int64) (*models.PhoneNumber, error)
	ListPhoneNumbers(ctx context.Context, limit, offset int) ([]models.PhoneNumber, error)
	UpdatePhoneNumber(ctx context.Context, id int64, req models.UpdatePhoneNumberRequest) (*models.PhoneNumber, error)
	DeletePhoneNumber(ctx context.Context, id int64) error
}

// CategoryRepository defines business category operations used by CategoryHandler.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.BusinessCategory, error)
	GetCategory(ctx context.Context, id int64) (*models.BusinessCategory, error)
	GetCategoryByPath(ctx context.Context, path string) (*models.BusinessCategory, error)
	ListCategories(ctx context.Context, limit, offset int) ([]models.BusinessCategory, error)
	UpdateCategory(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.BusinessCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}
