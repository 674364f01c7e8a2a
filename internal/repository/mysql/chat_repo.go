package mysql

import (
	"context"
	"errors"

	"Asamblea_Hub/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func (r *ChatRepository) IsParticipant(ctx context.Context, conversationID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListForUser devuelve las conversaciones del usuario con participantes y
// último mensaje, sin el historial completo.
func (r *ChatRepository) ListForUser(ctx context.Context, userID uint64) ([]model.PopulatedConversation, error) {
	db := r.DB.WithContext(ctx)

	var conversationIDs []uint64
	if err := db.Model(&model.ConversationParticipant{}).
		Where("user_id = ?", userID).
		Order("conversation_id").
		Pluck("conversation_id", &conversationIDs).Error; err != nil {
		return nil, err
	}

	populated := make([]model.PopulatedConversation, 0, len(conversationIDs))
	for _, id := range conversationIDs {
		conv, err := r.populate(db, id, false)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		populated = append(populated, *conv)
	}
	return populated, nil
}

// FindPopulated devuelve la conversación completa, mensajes incluidos.
func (r *ChatRepository) FindPopulated(ctx context.Context, conversationID uint64) (*model.PopulatedConversation, error) {
	return r.populate(r.DB.WithContext(ctx), conversationID, true)
}

func (r *ChatRepository) AddMessage(ctx context.Context, m *model.Message) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) populate(db *gorm.DB, conversationID uint64, withMessages bool) (*model.PopulatedConversation, error) {
	var conversation model.Conversation
	if err := db.First(&conversation, conversationID).Error; err != nil {
		return nil, err
	}

	var participantIDs []uint64
	if err := db.Model(&model.ConversationParticipant{}).
		Where("conversation_id = ?", conversationID).
		Order("user_id").
		Pluck("user_id", &participantIDs).Error; err != nil {
		return nil, err
	}

	var participants []model.User
	if len(participantIDs) > 0 {
		if err := db.Where("id IN ?", participantIDs).Order("id").Find(&participants).Error; err != nil {
			return nil, err
		}
	}

	populated := &model.PopulatedConversation{
		Conversation:   conversation,
		ParticipantIDs: participantIDs,
		Participants:   participants,
	}

	var last model.Message
	err := db.Where("conversation_id = ?", conversationID).
		Order("timestamp desc").Order("id desc").
		First(&last).Error
	switch {
	case err == nil:
		populated.LastMessage = &last
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if withMessages {
		if err := db.Where("conversation_id = ?", conversationID).
			Order("timestamp").Order("id").
			Find(&populated.Messages).Error; err != nil {
			return nil, err
		}
	}
	return populated, nil
}
