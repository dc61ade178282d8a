package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"inclusivehub/models"

	"github.com/gin-gonic/gin"
)

type stubPlaceRepo struct {
	places    map[string]*models.Place
	gotFilter *models.PlaceFilter
	created   []models.Place
}

func (r *stubPlaceRepo) Create(ctx context.Context, place models.Place) (string, error) {
	r.created = append(r.created, place)
	return "p-new", nil
}

func (r *stubPlaceRepo) GetByID(ctx context.Context, id string) (*models.Place, error) {
	return r.places[id], nil
}

func (r *stubPlaceRepo) List(ctx context.Context, filter *models.PlaceFilter) ([]models.Place, error) {
	r.gotFilter = filter
	var out []models.Place
	for _, p := range r.places {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlaceRepo) UpdateAccessibility(ctx context.Context, id string, features []string, description string) error {
	return nil
}

func (r *stubPlaceRepo) DeleteByID(ctx context.Context, id string) error {
	delete(r.places, id)
	return nil
}

func TestListPlacesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &stubPlaceRepo{places: map[string]*models.Place{
		"p1": {ID: "p1", Name: "Apollo Hospital", Type: "hospital"},
	}}
	h := NewPlaceHandler(repo, nil)

	r := gin.New()
	r.GET("/api/places", h.ListHandler)

	t.Run("parses type and features filters", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places?type=hospital&features=ramp,%20elevator", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if repo.gotFilter.Type != "hospital" {
			t.Errorf("filter type = %q", repo.gotFilter.Type)
		}
		if want := []string{"ramp", "elevator"}; !reflect.DeepEqual(repo.gotFilter.Features, want) {
			t.Errorf("filter features = %v, want %v", repo.gotFilter.Features, want)
		}
	})

	t.Run("no filters", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if repo.gotFilter.Type != "" || repo.gotFilter.Features != nil {
			t.Errorf("expected empty filter, got %+v", repo.gotFilter)
		}
	})
}

func TestGetPlaceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &stubPlaceRepo{places: map[string]*models.Place{
		"p1": {ID: "p1", Name: "Apollo Hospital", Type: "hospital"},
	}}
	h := NewPlaceHandler(repo, nil)

	r := gin.New()
	r.GET("/api/places/:id", h.GetHandler)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places/p1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var place models.Place
		if err := json.Unmarshal(w.Body.Bytes(), &place); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if place.Name != "Apollo Hospital" {
			t.Errorf("name = %q", place.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/places/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestCreatePlaceHandler(t *testing.T) {
	t.Run("requires name and type", func(t *testing.T) {
		repo := &stubPlaceRepo{places: map[string]*models.Place{}}
		h := NewPlaceHandler(repo, nil)

		w := postJSON(t, h.CreateHandler, "/api/places", "/api/places", gin.H{"name": "No type"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if len(repo.created) != 0 {
			t.Error("nothing should be created on validation failure")
		}
	})

	t.Run("creates place", func(t *testing.T) {
		repo := &stubPlaceRepo{places: map[string]*models.Place{}}
		h := NewPlaceHandler(repo, nil)

		w := postJSON(t, h.CreateHandler, "/api/places", "/api/places", gin.H{
			"name":     "Marina Beach Ramp",
			"type":     "park",
			"features": []string{"wheelchair ramp"},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", w.Code)
		}
		if len(repo.created) != 1 {
			t.Fatalf("created %d places, want 1", len(repo.created))
		}
		if repo.created[0].Name != "Marina Beach Ramp" {
			t.Errorf("created name = %q", repo.created[0].Name)
		}
	})
}
