package dao

import (
	"context"
	"time"

	"Xiaoji/models"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

// ListByConversation 游标分页获取会话消息（按时间倒序）
func (d *MessageDAO) ListByConversation(ctx context.Context, conversationID string, cursor int64, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	query := d.Db.WithContext(ctx).
		Where("conversation_id = ?", conversationID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// MarkConversationRead 将会话内发给该用户的消息全部置为已读
func (d *MessageDAO) MarkConversationRead(ctx context.Context, conversationID string, receiverID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, receiverID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// CountUnread 统计用户未读消息数
func (d *MessageDAO) CountUnread(ctx context.Context, receiverID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}
