package models

import (
	"time"
)

const (
	FollowStatusCancelled = 0
	FollowStatusActive    = 1
)

// Follow 关注关系
// 唯一键: follower_id + following_id
// 取消关注只翻转 status，行永不删除
type Follow struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"` // 关注人
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2" json:"following_id"` // 被关注人
	Status      int       `gorm:"column:status;not null;default:1" json:"status"` // 1:关注中 0:已取消
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Follow) TableName() string {
	return "follows"
}
