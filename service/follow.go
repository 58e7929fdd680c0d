package service

import (
	"context"
	"errors"
	"time"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/response"
	"Xiaoji/types"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*types.FollowingItem, error)
}

type FollowService struct {
	DB        *gorm.DB
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
}

// Follow 关注：没有关系行则创建 active 行，已取消则翻转回 active，
// 已关注则幂等返回。行一旦创建永不删除，取关只改 status。
// 关系行变化与双方计数（关注数/粉丝数）同事务提交。
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint64) error {
	_, err := s.setStatus(ctx, followerID, followingID, models.FollowStatusActive)
	return err
}

// Unfollow 取消关注：翻转 status 为 0，未关注则幂等返回
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	_, err := s.setStatus(ctx, followerID, followingID, models.FollowStatusCancelled)
	return err
}

// ToggleFollow 按当前状态翻转，返回翻转后是否在关注
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if err := s.checkPair(ctx, followerID, followingID); err != nil {
		return false, err
	}

	existing, err := s.FollowDAO.GetByPair(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}

	want := models.FollowStatusActive
	if existing != nil && existing.Status == models.FollowStatusActive {
		want = models.FollowStatusCancelled
	}
	return s.applyStatus(ctx, followerID, followingID, want)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followingID)
}

// GetFollowingList 获取用户关注的用户列表
func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*types.FollowingItem, error) {
	ids, err := s.FollowDAO.GetFollowingList(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	userMap, err := s.UserDAO.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*types.FollowingItem, 0, len(ids))
	for _, id := range ids {
		user, ok := userMap[id]
		if !ok {
			continue
		}
		items = append(items, &types.FollowingItem{
			UserID:   user.ID,
			Nickname: user.Nickname,
			Avatar:   user.Avatar,
		})
	}
	return items, nil
}

func (s *FollowService) checkPair(ctx context.Context, followerID, followingID uint64) error {
	if followingID == 0 {
		return response.NewBadRequest("用户ID不能为空")
	}
	if followerID == followingID {
		return response.NewBadRequest("不能关注自己")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", followingID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NewNotFound("用户不存在")
	}
	return nil
}

func (s *FollowService) setStatus(ctx context.Context, followerID, followingID uint64, want int) (bool, error) {
	if err := s.checkPair(ctx, followerID, followingID); err != nil {
		return false, err
	}
	return s.applyStatus(ctx, followerID, followingID, want)
}

// applyStatus 在一个事务里落关系行并应用计数增量。
// 只有 status 真正变化时才动计数，所以重复调用不会累加
func (s *FollowService) applyStatus(ctx context.Context, followerID, followingID uint64, want int) (bool, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var follow models.Follow
		err := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&follow).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		if follow.ID == 0 {
			if want == models.FollowStatusCancelled {
				// 从未关注过，取关无事可做
				return nil
			}
			follow = models.Follow{
				FollowerID:  followerID,
				FollowingID: followingID,
				Status:      models.FollowStatusActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Create(&follow).Error; err != nil {
				if isDuplicateKey(err) {
					// 并发下另一个请求赢了创建，当前请求不再计数
					return nil
				}
				return err
			}
			return s.applyFollowCounters(tx, followerID, followingID, 1)
		}

		if follow.Status == want {
			return nil
		}

		res := tx.Model(&models.Follow{}).
			Where("id = ? AND status = ?", follow.ID, follow.Status).
			Updates(map[string]any{"status": want, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 状态已被并发请求改走，计数由赢家负责
			return nil
		}

		delta := int64(1)
		if want == models.FollowStatusCancelled {
			delta = -1
		}
		return s.applyFollowCounters(tx, followerID, followingID, delta)
	})
	if err != nil {
		return false, err
	}
	return want == models.FollowStatusActive, nil
}

// applyFollowCounters 关注人关注数与被关注人粉丝数同增减
func (s *FollowService) applyFollowCounters(tx *gorm.DB, followerID, followingID uint64, delta int64) error {
	if err := incrUserCounter(tx, followerID, "follow_count", delta); err != nil {
		return err
	}
	return incrUserCounter(tx, followingID, "fans_count", delta)
}
