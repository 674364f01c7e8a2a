package service

import (
	"context"
	"testing"

	"Asamblea_Hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatService(t *testing.T) (*ChatService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedUser(t, db, 1, "Admin User", "admin@example.com")
	seedUser(t, db, 2, "Ana García", "ana@example.com")
	seedUser(t, db, 3, "Carlos Rodriguez", "carlos@example.com")
	require.NoError(t, db.Create(&model.Conversation{ID: 1, Name: "Coordinación"}).Error)
	require.NoError(t, db.Create(&model.ConversationParticipant{ConversationID: 1, UserID: 1}).Error)
	require.NoError(t, db.Create(&model.ConversationParticipant{ConversationID: 1, UserID: 2}).Error)
	return NewChatService(db), db
}

func TestChatSendMessage(t *testing.T) {
	svc, db := newChatService(t)
	ctx := context.Background()

	sent, err := svc.SendMessage(ctx, 2, 1, "¿A qué hora empiezo el sábado?")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), sent.SenderID)
	assert.False(t, sent.Timestamp.IsZero())

	var count int64
	require.NoError(t, db.Model(&model.Message{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestChatSendMessage_NotParticipant(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.SendMessage(context.Background(), 3, 1, "hola")
	require.ErrorIs(t, err, ErrNotParticipant)
	assert.EqualError(t, err, "No participas en esta conversación.")
}

func TestChatSendMessage_Empty(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.SendMessage(context.Background(), 2, 1, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestChatGetConversation_NotParticipant(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.GetConversation(context.Background(), 3, 1)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestChatGetConversation_WithHistory(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, 1, 1, "Hola Ana")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, 2, 1, "Hola, ¿qué tal?")
	require.NoError(t, err)

	conversation, err := svc.GetConversation(ctx, 2, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, conversation.ParticipantIDs)
	require.Len(t, conversation.Messages, 2)
	assert.Equal(t, "Hola Ana", conversation.Messages[0].Text)
	require.NotNil(t, conversation.LastMessage)
	assert.Equal(t, "Hola, ¿qué tal?", conversation.LastMessage.Text)
}

func TestChatListConversations_OnlyMine(t *testing.T) {
	svc, _ := newChatService(t)

	list, err := svc.ListConversations(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = svc.ListConversations(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
