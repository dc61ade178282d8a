package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"inclusivehub/models"

	"github.com/gin-gonic/gin"
)

type stubMarketplaceRepo struct {
	items []models.MarketplaceItem
}

func (r *stubMarketplaceRepo) Create(ctx context.Context, item models.MarketplaceItem) (string, error) {
	r.items = append(r.items, item)
	return "m-new", nil
}

func (r *stubMarketplaceRepo) GetByID(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, nil
}

func (r *stubMarketplaceRepo) List(ctx context.Context) ([]models.MarketplaceItem, error) {
	return r.items, nil
}

func (r *stubMarketplaceRepo) DeleteByID(ctx context.Context, id string) error {
	return nil
}

func TestGenerateDescriptionHandler(t *testing.T) {
	t.Run("returns generated copy", func(t *testing.T) {
		h := NewMarketplaceHandler(&stubMarketplaceRepo{}, &stubAssistantService{
			listing: &models.ListingCopy{
				Description: "A vivid hand-painted mug.",
				Tags:        []string{"ceramics", "handmade"},
			},
		})

		w := postJSON(t, h.GenerateDescriptionHandler, "/api/marketplace/generate-description", "/api/marketplace/generate-description", gin.H{
			"title": "Sunrise Mug",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var listing models.ListingCopy
		if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if listing.Description == "" || len(listing.Tags) != 2 {
			t.Errorf("listing = %+v", listing)
		}
	})

	t.Run("requires title", func(t *testing.T) {
		h := NewMarketplaceHandler(&stubMarketplaceRepo{}, &stubAssistantService{})

		w := postJSON(t, h.GenerateDescriptionHandler, "/api/marketplace/generate-description", "/api/marketplace/generate-description", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCreateMarketplaceHandler(t *testing.T) {
	repo := &stubMarketplaceRepo{}
	h := NewMarketplaceHandler(repo, &stubAssistantService{})

	w := postJSON(t, h.CreateHandler, "/api/marketplace", "/api/marketplace", gin.H{
		"title": "Sunrise Mug",
		"price": 12.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if len(repo.items) != 1 {
		t.Errorf("created %d items, want 1", len(repo.items))
	}
}
