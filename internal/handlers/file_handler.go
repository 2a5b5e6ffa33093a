package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"volunhub_backend/internal/storage"
	"volunhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored uploads (listing images).
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, storageInstance storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     storageInstance,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.storage.Exists(ctx, path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.NewNotFoundError("file", "File not found"))
		return
	}

	reader, err := h.storage.Get(ctx, path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, reader)
}
