package handlers

import (
	"net/http"

	"volunhub_backend/internal/middleware"
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/services"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", middleware.RequireVolunteer(), h.Submit)
		applications.GET("/received", middleware.RequireRoles(models.UserRoleOrganization), h.Received)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	applicant := middleware.GetCurrentUser(c)
	if applicant == nil {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authenticated"))
		return
	}

	if err := h.applicationService.Submit(db, applicant, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted and owner notified"})
}

func (h *ApplicationHandler) Received(c *gin.Context) {
	db := h.GetDB(c)

	rows, err := h.applicationService.Received(db, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
