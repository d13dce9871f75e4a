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

func TestBuildingCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockBuildingRepo{
		createFn: func(_ context.Context, req models.CreateBuildingRequest) (*models.Building, error) {
			return &models.Building{ID: 1, Address: req.Address, Location: req.Location}, nil
		},
	}

	r := gin.New()
	h := api.NewBuildingHandler(repo, testLogger())
	r.POST("/buildings", h.Create)

	w := doRequest(r, http.MethodPost, "/buildings",
		`{"address":"Lenina 1","location":{"longitude":37.6,"latitude":55.7}}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var b models.Building
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if b.ID != 1 || b.Address != "Lenina 1" {
		t.Errorf("unexpected building: %+v", b)
	}
}

func TestBuildingCreate_MissingAddress(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewBuildingHandler(&mockBuildingRepo{}, testLogger())
	r.POST("/buildings", h.Create)

	w := doRequest(r, http.MethodPost, "/buildings",
		`{"location":{"longitude":37.6,"latitude":55.7}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingCreate_MissingLocation(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewBuildingHandler(&mockBuildingRepo{}, testLogger())
	r.POST("/buildings", h.Create)

	w := doRequest(r, http.MethodPost, "/buildings", `{"address":"Lenina 1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingCreate_DuplicateAddress(t *testing.T) {
	t.Parallel()

	repo := &mockBuildingRepo{
		createFn: func(_ context.Context, _ models.CreateBuildingRequest) (*models.Building, error) {
			return nil, models.ErrAddressExists
		},
	}

	r := gin.New()
	h := api.NewBuildingHandler(repo, testLogger())
	r.POST("/buildings", h.Create)

	w := doRequest(r, http.MethodPost, "/buildings",
		`{"address":"Lenina 1","location":{"longitude":37.6,"latitude":55.7}}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockBuildingRepo{
		getFn: func(_ context.Context, _ int64) (*models.Building, error) {
			return nil, models.ErrBuildingNotFound
		},
	}

	r := gin.New()
	h := api.NewBuildingHandler(repo, testLogger())
	r.GET("/buildings/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/buildings/99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingGet_BadID(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewBuildingHandler(&mockBuildingRepo{}, testLogger())
	r.GET("/buildings/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/buildings/abc", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingDelete_HasOrganizations(t *testing.T) {
	t.Parallel()

	repo := &mockBuildingRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return models.ErrOrganizationsExist
		},
	}

	r := gin.New()
	h := api.NewBuildingHandler(repo, testLogger())
	r.DELETE("/buildings/:id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/buildings/1", "")

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingFindInRadius_DefaultRadius(t *testing.T) {
	t.Parallel()

	var gotRadius float64
	repo := &mockBuildingRepo{
		findRadiusFn: func(_ context.Context, q models.RadiusQuery) ([]models.Building, error) {
			gotRadius = q.RadiusMeters

			return []models.Building{}, nil
		},
	}

	r := gin.New()
	h := api.NewBuildingHandler(repo, testLogger())
	r.POST("/buildings/find/radius", h.FindInRadius)

	w := doRequest(r, http.MethodPost, "/buildings/find/radius",
		`{"center":{"longitude":37.6,"latitude":55.7}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotRadius != 100 {
		t.Errorf("expected default radius 100, got %v", gotRadius)
	}
}

func TestBuildingFindInRadius_NegativeRadius(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewBuildingHandler(&mockBuildingRepo{}, testLogger())
	r.POST("/buildings/find/radius", h.FindInRadius)

	w := doRequest(r, http.MethodPost, "/buildings/find/radius",
		`{"center":{"longitude":37.6,"latitude":55.7},"radius_meters":-5}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingFindInBBox_MissingCorner(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewBuildingHandler(&mockBuildingRepo{}, testLogger())
	r.POST("/buildings/find/bbox", h.FindInBBox)

	w := doRequest(r, http.MethodPost, "/buildings/find/bbox",
		`{"top_left":{"longitude":37.6,"latitude":55.7}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildingList(t *testing.T) {
	t.Parallel()

	repo := &mockBuildingRepo{
		listFn: func(_ context.Context, limit, offset int) ([]models.Building, error) {
			return []models.Building{
				{ID: 1, Address: "Lenina 1", Location: models.NewCoordinate(37.6, 55.7)},
				{ID: 2, Address: "Lenina 2", Location: models.NewCoordinate(37.7, 55.8)},
			}, nil
		},
	}

	r := gin.New()
	h := api.NewBuildingHandler(repo, testLogger())
	r.GET("/buildings", h.List)

	w := doRequest(r, http.MethodGet, "/buildings", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Buildings []models.Building `json:"buildings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(resp.Buildings) != 2 {
		t.Errorf("expected 2 buildings, got %d", len(resp.Buildings))
	}
}
