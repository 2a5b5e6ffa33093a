package handlers

import (
	"net/http"

	"volunhub_backend/internal/middleware"
	"volunhub_backend/internal/services"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	me := rg.Group("")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.Me)
		me.PUT("/profile", h.UpdateProfile)
	}
}

// Me returns the caller's public identity projection. The session
// middleware already resolved the user, so no second lookup is needed.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authenticated"))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.userService.UpdateProfile(db, middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
