package service

import (
	"context"
	"errors"
	"time"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("No se pudo encontrar la conversación.")
	ErrNotParticipant       = errors.New("No participas en esta conversación.")
	ErrEmptyMessage         = errors.New("El mensaje no puede estar vacío.")
)

type ChatService struct {
	repo *mysql.ChatRepository
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{
		repo: &mysql.ChatRepository{DB: db},
	}
}

func (s *ChatService) ListConversations(ctx context.Context, userID uint64) ([]model.PopulatedConversation, error) {
	return s.repo.ListForUser(ctx, userID)
}

// GetConversation devuelve la conversación completa; solo para participantes.
func (s *ChatService) GetConversation(ctx context.Context, userID, conversationID uint64) (*model.PopulatedConversation, error) {
	ok, err := s.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	conversation, err := s.repo.FindPopulated(ctx, conversationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	return conversation, err
}

// SendMessage añade un mensaje; solo los participantes pueden escribir.
func (s *ChatService) SendMessage(ctx context.Context, userID, conversationID uint64, text string) (*model.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	ok, err := s.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	message := &model.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Text:           text,
		Timestamp:      time.Now(),
	}
	if err := s.repo.AddMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}
