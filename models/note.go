package models

import (
	"time"

	"gorm.io/datatypes"
)

// Note 笔记表
// like_count / comment_count / collect_count 为冗余计数缓存
type Note struct {
	ID           uint64         `gorm:"column:id;primary_key" json:"id"`
	UserID       uint64         `gorm:"column:user_id;not null;index:idx_userid_status" json:"user_id"`
	Title        string         `gorm:"column:title;type:varchar(100);not null;default:''" json:"title"`
	Content      string         `gorm:"column:content;type:text" json:"content"`
	MediaData    datatypes.JSON `gorm:"column:media_data" json:"media_data"`
	LikeCount    int64          `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount int64          `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	CollectCount int64          `gorm:"column:collect_count;not null;default:0" json:"collect_count"`
	Status       int8           `gorm:"column:status;not null;default:1;index:idx_userid_status" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (n Note) TableName() string {
	return "notes"
}
