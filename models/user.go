package models

import (
	"time"
)

const (
	UserStatusDisabled = 0
	UserStatusEnabled  = 1
)

// User 用户表
// follow_count / fans_count / like_collect_count 为冗余计数缓存，
// 真实来源是 follows / likes / collections 关系行
type User struct {
	ID               uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Username         string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Nickname         string    `gorm:"column:nickname;type:varchar(64);not null;default:''" json:"nickname"`
	Avatar           string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Password         string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	FollowCount      int64     `gorm:"column:follow_count;not null;default:0" json:"follow_count"`
	FansCount        int64     `gorm:"column:fans_count;not null;default:0" json:"fans_count"`
	LikeCollectCount int64     `gorm:"column:like_collect_count;not null;default:0" json:"like_collect_count"`
	Status           int8      `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
