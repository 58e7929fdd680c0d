package models

import "time"

// Collection 收藏记录
// 唯一键: user_id + note_id
// 与 Like 相同的删除式开关：取消收藏删除行
type Collection struct {
	ID        uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_note,priority:1" json:"user_id"`
	NoteID    uint64    `gorm:"column:note_id;not null;uniqueIndex:uk_user_note,priority:2" json:"note_id"`
	Status    uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}
