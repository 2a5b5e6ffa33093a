package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"volunhub_backend/internal/config"
	"volunhub_backend/internal/logger"
	"volunhub_backend/internal/middleware"
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/services"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/internal/storage"
	"volunhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
	storage        storage.Storage
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService, storageInstance storage.Storage) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
		storage:        storageInstance,
	}
}

func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.List)
	}

	protected := rg.Group("/listings")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/mine", middleware.RequireRoles(models.UserRoleOrganization), h.Mine)
		protected.POST("", middleware.RequireRoles(models.UserRoleOrganization), h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *ListingHandler) List(c *gin.Context) {
	var query dto.ListListingsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	listings, err := h.listingService.List(db, query.VolunteerGender)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) Mine(c *gin.Context) {
	db := h.GetDB(c)

	listings, err := h.listingService.Mine(db, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req dto.CreateListingRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	imageURL, ok := h.saveImage(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	owner := middleware.GetCurrentUser(c)

	listing, err := h.listingService.Create(db, owner, &req, imageURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req dto.UpdateListingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	listing, err := h.listingService.Update(db, middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.listingService.Delete(db, middleware.GetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// saveImage stores the optional "image" form file and returns its public
// URL. Returns ok=false when a response has already been written.
func (h *ListingHandler) saveImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image attached
		return "", true
	}

	cfg := config.GetConfig()
	if fileHeader.Size > cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError(
			fmt.Sprintf("Image exceeds the maximum size of %d bytes", cfg.Upload.MaxSize)))
		return "", false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedType(contentType, cfg.Upload.AllowedTypes) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Image type is not allowed"))
		return "", false
	}

	path := fmt.Sprintf("listings/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	if err := h.storeFile(c, fileHeader, path, contentType); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to store listing image", err)
		apperrors.HandleError(c, apperrors.InternalError(err))
		return "", false
	}

	url, err := h.storage.GetURL(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return "", false
	}
	return url, true
}

func (h *ListingHandler) storeFile(c *gin.Context, fileHeader *multipart.FileHeader, path, contentType string) error {
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	return h.storage.Save(c.Request.Context(), path, file, contentType)
}

func allowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
