package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	// Go 1.21's ServeMux lacks "METHOD /path" patterns; dispatch on method here.
	byPath := map[string]map[string]http.HandlerFunc{}
	for pattern, handler := range routes {
		var method, path string
		if _, err := fmt.Sscanf(pattern, "%s %s", &method, &path); err != nil {
			t.Fatalf("bad route pattern %q: %v", pattern, err)
		}
		if byPath[path] == nil {
			byPath[path] = map[string]http.HandlerFunc{}
		}
		byPath[path][method] = handler
	}
	for path, methods := range byPath {
		methods := methods
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if h, ok := methods[r.Method]; ok {
				h(w, r)
				return
			}
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL, WithAPIKey("test-key"))
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "1.0.0"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
}

func TestAPIKeyHeader(t *testing.T) {
	var gotKey string
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/buildings": func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-API-KEY")
			jsonResponse(w, 200, map[string]any{"buildings": []Building{}})
		},
	})
	if _, err := c.Buildings.List(context.Background(), nil); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("got X-API-KEY %q, want test-key", gotKey)
	}
}

func TestBuildingsCRUD(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/buildings": func(w http.ResponseWriter, r *http.Request) {
			var req CreateBuildingRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Building{ID: 1, Address: req.Address, Location: req.Location})
		},
		"GET /api/v1/buildings/1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Building{ID: 1, Address: "Lenina 1"})
		},
		"PUT /api/v1/buildings/1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Building{ID: 1, Address: "Lenina 2"})
		},
		"DELETE /api/v1/buildings/1": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(204)
		},
	})

	ctx := context.Background()

	created, err := c.Buildings.Create(ctx, &CreateBuildingRequest{
		Address:  "Lenina 1",
		Location: NewCoordinate(37.6, 55.7),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("got id %d, want 1", created.ID)
	}

	got, err := c.Buildings.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Address != "Lenina 1" {
		t.Errorf("got address %q", got.Address)
	}

	addr := "Lenina 2"
	updated, err := c.Buildings.Update(ctx, 1, &UpdateBuildingRequest{Address: &addr})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Address != "Lenina 2" {
		t.Errorf("got address %q", updated.Address)
	}

	if err := c.Buildings.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
}

func TestOrganizationSearch(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/organizations/by-category": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("path") != "food.fast" {
				t.Errorf("got path %q", r.URL.Query().Get("path"))
			}
			jsonResponse(w, 200, map[string]any{"organizations": []Organization{
				{ID: 1, Name: "Pizza", BuildingID: 1},
			}})
		},
		"POST /api/v1/organizations/find/radius": func(w http.ResponseWriter, r *http.Request) {
			var q RadiusQuery
			json.NewDecoder(r.Body).Decode(&q) //nolint:errcheck
			if q.RadiusMeters != 500 {
				t.Errorf("got radius %v", q.RadiusMeters)
			}
			jsonResponse(w, 200, map[string]any{"organizations": []Organization{}})
		},
	})

	ctx := context.Background()

	orgs, err := c.Organizations.FindByCategory(ctx, "food.fast")
	if err != nil {
		t.Fatalf("FindByCategory() error: %v", err)
	}
	if len(orgs) != 1 || orgs[0].Name != "Pizza" {
		t.Errorf("unexpected result: %+v", orgs)
	}

	if _, err := c.Organizations.FindInRadius(ctx, &RadiusQuery{
		Center:       NewCoordinate(37.6, 55.7),
		RadiusMeters: 500,
	}); err != nil {
		t.Fatalf("FindInRadius() error: %v", err)
	}
}

func TestErrorParsing(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/buildings/9": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "building not found"})
		},
		"POST /api/v1/categories": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 409, map[string]string{"code": "conflict", "message": "category with this path already exists"})
		},
	})

	ctx := context.Background()

	_, err := c.Buildings.Get(ctx, 9)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}

	_, err = c.Categories.Create(ctx, &CreateCategoryRequest{Name: "X", Path: "food"})
	if !IsConflict(err) {
		t.Errorf("expected conflict error, got %v", err)
	}
}
