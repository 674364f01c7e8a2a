package model

import "time"

type Conversation struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type ConversationParticipant struct {
	ID             uint64    `gorm:"primaryKey"`
	ConversationID uint64    `gorm:"not null;index;uniqueIndex:uk_conversation_user"`
	UserID         uint64    `gorm:"not null;index;uniqueIndex:uk_conversation_user"`
	CreatedAt      time.Time
}

func (ConversationParticipant) TableName() string { return "conversation_participants" }

type Message struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ConversationID uint64    `gorm:"not null;index" json:"conversationId"`
	SenderID       uint64    `gorm:"not null;index" json:"senderId"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	Timestamp      time.Time `gorm:"not null;index" json:"timestamp"`
}

// PopulatedConversation une la conversación con participantes, mensajes y el último mensaje.
type PopulatedConversation struct {
	Conversation
	ParticipantIDs []uint64  `json:"participantIds"`
	Participants   []User    `json:"participants"`
	Messages       []Message `json:"messages,omitempty"`
	LastMessage    *Message  `json:"lastMessage"`
}
