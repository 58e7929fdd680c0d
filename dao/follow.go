package dao

import (
	"context"

	"Xiaoji/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

// GetByPair 查询关注关系行，不区分 status
func (d *FollowDAO) GetByPair(ctx context.Context, followerID, followingID uint64) (*models.Follow, error) {
	return d.FindByWhere(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// IsFollowing 检查是否已关注（status=1）
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ? AND status = ?",
		followerID, followingID, models.FollowStatusActive)
}

// GetFollowingList 获取用户关注的用户列表（按关注时间倒序）
func (d *FollowDAO) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND status = ?", userID, models.FollowStatusActive).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("following_id", &ids).Error
	return ids, err
}
