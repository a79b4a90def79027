package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/pkg/helpers"
	"github.com/souravverma/portfolio-backend/pkg/response"
)

const maxUploadBytes = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

type UploadHandler struct {
	GCS    *storage.Client
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewUploadHandler(gcs *storage.Client, cfg *config.Config, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{GCS: gcs, Cfg: cfg, Logger: logger}
}

// Upload POST /api/admin/portfolio/upload (auth required)
// Accepts a multipart "image" file and stores it under portfolio/ in the
// configured bucket. Returns the public URL for use as a portfolio imageUrl.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.GCS == nil || h.Cfg.GCSBucket == "" {
		response.Error[any](c, http.StatusServiceUnavailable, "Upload is not configured", nil)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "An image file is required", nil)
		return
	}
	if fh.Size > maxUploadBytes {
		response.Error[any](c, http.StatusBadRequest, "Image must be 5MB or smaller", nil)
		return
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		response.Error[any](c, http.StatusBadRequest, "Unsupported image type", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "Failed to read upload", nil)
		return
	}
	defer func() { _ = f.Close() }()

	objectPath := "portfolio/" + uuid.NewString() + ext
	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.Cfg.GCSBucket, objectPath, contentType, f)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("image upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Upload failed", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"url":    url,
		"object": objectPath,
	}, "Image uploaded", nil)
}
