package handlers

import (
	"net/http"

	"volunhub_backend/internal/middleware"
	"volunhub_backend/internal/services"
	"volunhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Board: public read, authenticated write
	rg.GET("/messages/board", h.Board)

	board := rg.Group("/messages/board")
	board.Use(middleware.AuthMiddleware())
	{
		board.POST("", h.PostBoard)
	}

	messages := rg.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", h.Inbox)
		messages.POST("", h.Send)
		messages.PATCH("/:id/read", h.MarkRead)
		messages.DELETE("/:id", h.Delete)
	}
}

func (h *MessageHandler) Board(c *gin.Context) {
	db := h.GetDB(c)

	messages, err := h.messageService.Board(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) PostBoard(c *gin.Context) {
	var req dto.PostBoardMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.messageService.PostBoard(db, middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	db := h.GetDB(c)

	inbox, err := h.messageService.Inbox(db, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, inbox)
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.messageService.Send(db, middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.messageService.MarkRead(db, middleware.GetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.messageService.Delete(db, middleware.GetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
