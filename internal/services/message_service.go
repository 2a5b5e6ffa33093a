package services

import (
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/repositories"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MessageService interface {
	Board(db *gorm.DB) ([]models.Message, error)
	PostBoard(db *gorm.DB, senderID string, req *dto.PostBoardMessageRequest) (*models.Message, error)
	Inbox(db *gorm.DB, recipientID string) (*dto.InboxResponse, error)
	Send(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*models.Message, error)
	MarkRead(db *gorm.DB, callerID, messageID string) error
	Delete(db *gorm.DB, callerID, messageID string) error
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *MessageServiceImpl) Board(db *gorm.DB) ([]models.Message, error) {
	messages, err := s.messageRepo.FindBoard(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

func (s *MessageServiceImpl) PostBoard(db *gorm.DB, senderID string, req *dto.PostBoardMessageRequest) (*models.Message, error) {
	message := &models.Message{
		SenderID: &senderID,
		Content:  req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

func (s *MessageServiceImpl) Inbox(db *gorm.DB, recipientID string) (*dto.InboxResponse, error) {
	messages, err := s.messageRepo.FindByRecipient(db, recipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.messageRepo.CountUnread(db, recipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.InboxResponse{
		Messages:    messages,
		UnreadCount: unread,
	}, nil
}

func (s *MessageServiceImpl) Send(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*models.Message, error) {
	if _, err := s.userRepo.FindByID(db, req.RecipientID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:    &senderID,
		RecipientID: &req.RecipientID,
		ListingID:   req.ListingID,
		Content:     req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

// MarkRead and Delete rely on recipient-scoped queries: a message that is
// absent or addressed to someone else yields the same not-found error.

func (s *MessageServiceImpl) MarkRead(db *gorm.DB, callerID, messageID string) error {
	if err := s.messageRepo.MarkRead(db, messageID, callerID); err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MessageServiceImpl) Delete(db *gorm.DB, callerID, messageID string) error {
	if err := s.messageRepo.Delete(db, messageID, callerID); err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
