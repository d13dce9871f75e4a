package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orgatlas/orgatlas/internal/api"
	"github.com/orgatlas/orgatlas/internal/models"
)

func TestOrganizationCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockOrganizationRepo{
		createFn: func(_ context.Context, req models.CreateOrganizationRequest) (*models.Organization, error) {
			return &models.Organization{
				ID:                 1,
				Name:               req.Name,
				BuildingID:         req.BuildingID,
				PhoneNumbers:       []models.PhoneNumber{},
				BusinessCategories: []models.BusinessCategory{},
			}, nil
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.POST("/organizations", h.Create)

	w := doRequest(r, http.MethodPost, "/organizations",
		`{"name":"Roga i Kopyta","building_id":1}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var org models.Organization
	if err := json.Unmarshal(w.Body.Bytes(), &org); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if org.Name != "Roga i Kopyta" {
		t.Errorf("unexpected name %q", org.Name)
	}
	if org.PhoneNumbers == nil || org.BusinessCategories == nil {
		t.Error("relations should serialize as empty arrays, not null")
	}
}

func TestOrganizationCreate_MissingBuilding(t *testing.T) {
	t.Parallel()

	repo := &mockOrganizationRepo{
		createFn: func(_ context.Context, _ models.CreateOrganizationRequest) (*models.Organization, error) {
			return nil, models.ErrBuildingNotFound
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.POST("/organizations", h.Create)

	w := doRequest(r, http.MethodPost, "/organizations",
		`{"name":"Roga i Kopyta","building_id":99}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrganizationCreate_MissingName(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewOrganizationHandler(&mockOrganizationRepo{}, testLogger())
	r.POST("/organizations", h.Create)

	w := doRequest(r, http.MethodPost, "/organizations", `{"building_id":1}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrganizationGetByName_MissingParam(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewOrganizationHandler(&mockOrganizationRepo{}, testLogger())
	r.GET("/organizations/by-name", h.GetByName)

	w := doRequest(r, http.MethodGet, "/organizations/by-name", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrganizationGetByName_Found(t *testing.T) {
	t.Parallel()

	repo := &mockOrganizationRepo{
		getByNameFn: func(_ context.Context, name string) (*models.Organization, error) {
			return &models.Organization{ID: 7, Name: name, BuildingID: 1}, nil
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.GET("/organizations/by-name", h.GetByName)

	w := doRequest(r, http.MethodGet, "/organizations/by-name?name=Roga+i+Kopyta", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var org models.Organization
	if err := json.Unmarshal(w.Body.Bytes(), &org); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if org.Name != "Roga i Kopyta" {
		t.Errorf("unexpected name %q", org.Name)
	}
}

func TestOrganizationFindByCategory_BadPath(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewOrganizationHandler(&mockOrganizationRepo{}, testLogger())
	r.GET("/organizations/by-category", h.FindByCategory)

	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"uppercase", "Food"},
		{"too deep", "a.b.c.d"},
		{"trailing dot", "food."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/organizations/by-category?path="+tt.path, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("path %q: expected 400, got %d", tt.path, w.Code)
			}
		})
	}
}

func TestOrganizationFindByCategory_PassesPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	repo := &mockOrganizationRepo{
		findByCategoryFn: func(_ context.Context, path string) ([]models.Organization, error) {
			gotPath = path

			return []models.Organization{{ID: 1, Name: "Pizza", BuildingID: 1}}, nil
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.GET("/organizations/by-category", h.FindByCategory)

	w := doRequest(r, http.MethodGet, "/organizations/by-category?path=food.fast", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotPath != "food.fast" {
		t.Errorf("expected path food.fast, got %q", gotPath)
	}
}

func TestOrganizationUpdate_MoveToMissingBuilding(t *testing.T) {
	t.Parallel()

	repo := &mockOrganizationRepo{
		updateFn: func(_ context.Context, _ int64, _ models.UpdateOrganizationRequest) (*models.Organization, error) {
			return nil, models.ErrBuildingNotFound
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.PUT("/organizations/:id", h.Update)

	w := doRequest(r, http.MethodPut, "/organizations/1", `{"building_id":99}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrganizationDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockOrganizationRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return models.ErrOrganizationNotFound
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.DELETE("/organizations/:id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/organizations/42", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrganizationFindInBBox_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockOrganizationRepo{
		findBBoxFn: func(_ context.Context, q models.BBoxQuery) ([]models.Organization, error) {
			return []models.Organization{{ID: 1, Name: "Pizza", BuildingID: 1}}, nil
		},
	}

	r := gin.New()
	h := api.NewOrganizationHandler(repo, testLogger())
	r.POST("/organizations/find/bbox", h.FindInBBox)

	w := doRequest(r, http.MethodPost, "/organizations/find/bbox",
		`{"top_left":{"longitude":37.4,"latitude":55.8},"bottom_right":{"longitude":37.8,"latitude":55.6}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Organizations []models.Organization `json:"organizations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(resp.Organizations) != 1 {
		t.Errorf("expected 1 organization, got %d", len(resp.Organizations))
	}
}
