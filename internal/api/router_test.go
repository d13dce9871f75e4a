package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgatlas/orgatlas/internal/api"
	"github.com/orgatlas/orgatlas/internal/models"
)

func newRouterForTest(t *testing.T) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	buildings := &mockBuildingRepo{
		listFn: func(_ context.Context, _, _ int) ([]models.Building, error) {
			return []models.Building{}, nil
		},
	}

	return api.NewRouter(ctx, &api.RouterDeps{
		Log:           testLogger(),
		Buildings:     buildings,
		Organizations: &mockOrganizationRepo{},
		Phones:        &mockPhoneRepo{},
		Categories:    &mockCategoryRepo{},
		APIKey:        "test-key",
		Version:       "test",
	})
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/buildings", http.NoBody)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/buildings", http.NoBody)
	req2.Header.Set("X-API-KEY", "test-key")
	r.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d: %s", w2.Code, w2.Body.String())
	}
}

func TestRouter_HealthIsUnauthenticated(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", http.NoBody)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	r := newRouterForTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
