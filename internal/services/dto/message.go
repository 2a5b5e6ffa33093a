package dto

import (
	"volunhub_backend/internal/models"
)

type PostBoardMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type SendMessageRequest struct {
	RecipientID string  `json:"recipient_id" binding:"required"`
	ListingID   *string `json:"listing_id,omitempty"`
	Content     string  `json:"content" binding:"required"`
}

// InboxResponse is the recipient-scoped message list with its unread count.
type InboxResponse struct {
	Messages    []models.Message `json:"messages"`
	UnreadCount int64            `json:"unread_count"`
}
