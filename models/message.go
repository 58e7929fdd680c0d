package models

import "time"

const (
	MessageContentText  = 0
	MessageContentImage = 1
	MessageContentVideo = 2
	MessageContentAudio = 3
	MessageContentFile  = 4
)

// Message 私信表
// conversation_id 由双方 uid 推导（小id_大id），不由客户端提交
type Message struct {
	ID             uint64    `gorm:"column:id;primary_key" json:"id"`
	SenderID       uint64    `gorm:"column:sender_id;not null" json:"sender_id"`
	ReceiverID     uint64    `gorm:"column:receiver_id;not null;index:idx_receiver_read,priority:1" json:"receiver_id"`
	ConversationID string    `gorm:"column:conversation_id;type:varchar(64);not null;index:idx_conv_created,priority:1" json:"conversation_id"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	ContentType    uint8     `gorm:"column:content_type;not null;default:0" json:"content_type"`
	MediaURL       string    `gorm:"column:media_url;type:varchar(255);not null;default:''" json:"media_url"`
	IsRead         bool      `gorm:"column:is_read;not null;default:0;index:idx_receiver_read,priority:2" json:"is_read"`
	Status         uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_conv_created,priority:2" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
