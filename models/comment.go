package models

import (
	"time"
)

const (
	CommentStatusDeleted   = 0
	CommentStatusPublished = 1
	CommentStatusPending   = 2

	CommentLevelRoot  = 1
	CommentLevelReply = 2
)

// Comment 评论表
// 两级结构: level=1 为根评论，level=2 为回复
// root_comment_id 永远指向 level=1 的评论，回复链被压平
type Comment struct {
	ID            uint64    `gorm:"column:id;primaryKey" json:"id"`
	NoteID        uint64    `gorm:"column:note_id;not null;index:idx_note_root" json:"note_id"`
	AuthorID      uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	ReplyToID     *uint64   `gorm:"column:reply_to_id" json:"reply_to_id,omitempty"`          // 被回复的评论ID
	RootCommentID *uint64   `gorm:"column:root_comment_id;index:idx_note_root" json:"root_comment_id,omitempty"` // 所属根评论ID
	Level         uint8     `gorm:"column:level;not null;default:1" json:"level"`
	LikeCount     int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	Status        uint8     `gorm:"column:status;not null;default:1" json:"status"` // 1-已发布, 0-已删除, 2-审核中
	ImageURL      string    `gorm:"column:image_url;type:varchar(255);not null;default:''" json:"image_url"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
