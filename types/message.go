package types

import "time"

type SendMessageRequest struct {
	ReceiverID  uint64 `json:"receiver_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
	ContentType uint8  `json:"content_type"`
	MediaURL    string `json:"media_url"`
}

type MessageResponse struct {
	ID             uint64    `json:"id"`
	SenderID       uint64    `json:"sender_id"`
	ReceiverID     uint64    `json:"receiver_id"`
	ConversationID string    `json:"conversation_id"`
	Content        string    `json:"content"`
	ContentType    uint8     `json:"content_type"`
	MediaURL       string    `json:"media_url,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationMessagesResponse struct {
	ConversationID string             `json:"conversation_id"`
	Messages       []*MessageResponse `json:"messages"`
	NextCursor     int64              `json:"next_cursor"`
	HasMore        bool               `json:"has_more"`
}
