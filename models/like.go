package models

import "time"

const (
	LikeTargetNote    = 1
	LikeTargetComment = 2
)

// Like 点赞记录
// note_id / comment_id 按 target_type 恰有一个非空
// 唯一键: user_id + note_id 以及 user_id + comment_id
// 取消点赞删除行，重新点赞新建行
type Like struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_note,priority:1;uniqueIndex:uk_user_comment,priority:1" json:"user_id"`
	NoteID     *uint64   `gorm:"column:note_id;uniqueIndex:uk_user_note,priority:2" json:"note_id,omitempty"`
	CommentID  *uint64   `gorm:"column:comment_id;uniqueIndex:uk_user_comment,priority:2" json:"comment_id,omitempty"`
	TargetType uint8     `gorm:"column:target_type;not null;default:1" json:"target_type"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
