package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-admin/internal/service"
)

// maxUploadBytes caps a single media upload at 10 MiB.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader *service.MediaUploader
	logger   *zap.Logger
}

func NewUploadHandler(uploader *service.MediaUploader, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, logger: logger}
}

// Upload forwards a multipart "file" part to the media host and returns
// the hosted URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("Media upload failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "media host rejected the upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
