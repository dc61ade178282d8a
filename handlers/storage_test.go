package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// stubStorageService records calls and returns canned URLs.
type stubStorageService struct {
	uploaded  []string
	deleted   []string
	signedFor []string
	err       error
}

func (s *stubStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploaded = append(s.uploaded, destFolder)
	return destFolder + "/file", nil
}

func (s *stubStorageService) DeleteFile(ctx context.Context, publicID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, publicID)
	return nil
}

func (s *stubStorageService) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://cdn.example.com/" + publicID, nil
}

func (s *stubStorageService) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.signedFor = append(s.signedFor, publicID)
	return "https://cdn.example.com/signed/" + publicID, nil
}

func storageRequest(t *testing.T, handler gin.HandlerFunc, method, route, url string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Handle(method, route, handler)
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetDownloadURLHandler(t *testing.T) {
	t.Run("public URL", func(t *testing.T) {
		svc := &stubStorageService{}
		h := NewStorageHandler(svc)

		w := storageRequest(t, h.GetDownloadURLHandler, http.MethodGet,
			"/api/uploads/:type/:bucket/:filename", "/api/uploads/image/places/photo.jpg")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp["downloadURL"] != "https://cdn.example.com/images/places/photo.jpg" {
			t.Errorf("downloadURL = %q", resp["downloadURL"])
		}
		if len(svc.signedFor) != 0 {
			t.Error("expected no signed URL for a plain request")
		}
	})

	t.Run("signed URL", func(t *testing.T) {
		svc := &stubStorageService{}
		h := NewStorageHandler(svc)

		w := storageRequest(t, h.GetDownloadURLHandler, http.MethodGet,
			"/api/uploads/:type/:bucket/:filename", "/api/uploads/image/places/photo.jpg?signed=true")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(svc.signedFor) != 1 || svc.signedFor[0] != "images/places/photo.jpg" {
			t.Errorf("signed calls = %v", svc.signedFor)
		}
	})

	t.Run("invalid bucket", func(t *testing.T) {
		h := NewStorageHandler(&stubStorageService{})

		w := storageRequest(t, h.GetDownloadURLHandler, http.MethodGet,
			"/api/uploads/:type/:bucket/:filename", "/api/uploads/image/secrets/photo.jpg")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestDeleteFileHandler(t *testing.T) {
	t.Run("deletes file", func(t *testing.T) {
		svc := &stubStorageService{}
		h := NewStorageHandler(svc)

		w := storageRequest(t, h.DeleteFileHandler, http.MethodDelete,
			"/api/uploads/:type/:bucket/:filename", "/api/uploads/image/marketplace/item.jpg")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(svc.deleted) != 1 || svc.deleted[0] != "images/marketplace/item.jpg" {
			t.Errorf("deleted = %v", svc.deleted)
		}
	})

	t.Run("invalid bucket", func(t *testing.T) {
		svc := &stubStorageService{}
		h := NewStorageHandler(svc)

		w := storageRequest(t, h.DeleteFileHandler, http.MethodDelete,
			"/api/uploads/:type/:bucket/:filename", "/api/uploads/image/secrets/item.jpg")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if len(svc.deleted) != 0 {
			t.Error("expected no delete call for invalid bucket")
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		h := NewStorageHandler(&stubStorageService{err: errors.New("destroy failed")})

		w := storageRequest(t, h.DeleteFileHandler, http.MethodDelete,
			"/api/uploads/:type/:bucket/:filename", "/api/uploads/image/places/item.jpg")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp["message"] != "failed to delete file" {
			t.Errorf("message = %q", resp["message"])
		}
	})
}
