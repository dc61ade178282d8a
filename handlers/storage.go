package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"inclusivehub/services/storage"
	"inclusivehub/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles media upload and download-URL endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for uploads.
var allowedBuckets = map[string]bool{
	"places":      true,
	"marketplace": true,
	"community":   true,
}

const invalidBucketMsg = "invalid bucket; allowed values are 'places', 'marketplace' and 'community'"

// UploadFileHandler handles POST /api/uploads/:type/:bucket.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	fileType := c.Param("type")
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, invalidBucketMsg, bucket)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := fileType + "s/" + bucket

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, fileType, publicID, 0)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to construct download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"downloadURL": downloadURL,
	})
}

// GetDownloadURLHandler handles GET /api/uploads/:type/:bucket/:filename.
// With ?signed=true the URL is signed and expires after the ?expires=
// duration (default 15m); otherwise a permanent public URL is returned.
func (h *StorageHandler) GetDownloadURLHandler(c *gin.Context) {
	fileType := c.Param("type")
	bucket := c.Param("bucket")
	filename := c.Param("filename")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, invalidBucketMsg, bucket)
		return
	}

	destPath := fileType + "s/" + bucket + "/" + filename

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	var url string
	var err error
	if c.Query("signed") == "true" {
		url, err = h.StorageSvc.GetSecureDownloadURL(c, fileType, destPath, expiry)
	} else {
		url, err = h.StorageSvc.GetDownloadURL(c, fileType, destPath, expiry)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteFileHandler handles DELETE /api/uploads/:type/:bucket/:filename.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	fileType := c.Param("type")
	bucket := c.Param("bucket")
	filename := c.Param("filename")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, invalidBucketMsg, bucket)
		return
	}

	destPath := fileType + "s/" + bucket + "/" + filename

	if err := h.StorageSvc.DeleteFile(c, destPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete file", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted successfully"})
}
