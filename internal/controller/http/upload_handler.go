package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"movielist/pkg/logger"
	"movielist/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedPosterTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadHandler stores poster images in S3 and hands back the public URL
// for the post form's image_url field. A nil client disables uploads.
type UploadHandler struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewUploadHandler(s3Client *s3.Client, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		s3Client: s3Client,
		logger:   logger,
	}
}

func (h *UploadHandler) UploadPoster(c *gin.Context) {
	if h.s3Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Poster uploads are not configured."})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required."})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedPosterTypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type. Use jpg, png, gif or webp."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file."})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("posters/%s%s", uuid.New().String(), ext)
	url, err := h.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		h.logger.Error("Failed to upload poster %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
