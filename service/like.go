package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/log"
	"Xiaoji/pkg/response"
	"Xiaoji/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	UserLikedNotesKey     = "user:liked:notes:%d"     // 用户点赞的笔记集合
	UserCollectedNotesKey = "user:collected:notes:%d" // 用户收藏的笔记集合

	CacheTTL = 24 * time.Hour
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, userID uint64, target types.LikeTarget) (bool, error)
	IsNoteLiked(ctx context.Context, userID, noteID uint64) (bool, error)
}

type LikeService struct {
	DB         *gorm.DB
	LikeDAO    *dao.LikeDAO
	NoteDAO    *dao.NoteDAO
	CommentDAO *dao.CommentDAO
	Redis      *redis.Client
}

// ToggleLike 点赞开关：没点过就创建记录并 +1，点过就删除记录并 -1。
// 关系行和计数在同一事务内提交；并发重复点赞由唯一键裁决，
// 输家视为“已是目标状态”而不是报错。
func (s *LikeService) ToggleLike(ctx context.Context, userID uint64, target types.LikeTarget) (bool, error) {
	if !target.Valid() {
		return false, response.NewBadRequest("点赞目标不合法")
	}

	if err := s.checkTargetExists(ctx, target); err != nil {
		return false, err
	}

	var liked bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.findInTx(tx, userID, target)
		if err != nil {
			return err
		}

		if existing == nil {
			row := target.Row(userID)
			if err := tx.Create(&row).Error; err != nil {
				if isDuplicateKey(err) {
					// 并发下另一个请求已创建，当前请求不再计数
					liked = true
					return nil
				}
				return err
			}
			liked = true
			return s.applyLikeCounters(tx, target, 1)
		}

		// 取消点赞：硬删除，重新点赞会新建行
		res := tx.Delete(&models.Like{}, "id = ?", existing.ID)
		if res.Error != nil {
			return res.Error
		}
		liked = false
		if res.RowsAffected == 0 {
			// 并发下另一个请求已取消，计数由它负责
			return nil
		}
		return s.applyLikeCounters(tx, target, -1)
	})
	if err != nil {
		return false, err
	}

	s.updateCacheAfterToggle(ctx, userID, target, liked)
	return liked, nil
}

// IsNoteLiked 是否点赞了笔记，先查 Redis 集合，未命中回源数据库
func (s *LikeService) IsNoteLiked(ctx context.Context, userID, noteID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	key := fmt.Sprintf(UserLikedNotesKey, userID)
	exists, err := s.Redis.SIsMember(ctx, key, noteID).Result()
	if err == nil && exists {
		return true, nil
	}

	liked, err := s.LikeDAO.IsNoteLiked(ctx, userID, noteID)
	if err != nil {
		return false, err
	}
	if liked {
		s.Redis.SAdd(ctx, key, noteID)
		s.Redis.Expire(ctx, key, CacheTTL)
	}
	return liked, nil
}

func (s *LikeService) checkTargetExists(ctx context.Context, target types.LikeTarget) error {
	if target.IsNote() {
		exist, err := s.NoteDAO.IsExist(ctx, "id = ?", target.ID())
		if err != nil {
			return err
		}
		if !exist {
			return response.NewNotFound("笔记不存在")
		}
		return nil
	}

	comment, err := s.CommentDAO.GetByID(ctx, target.ID())
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewNotFound("评论不存在")
	}
	return nil
}

func (s *LikeService) findInTx(tx *gorm.DB, userID uint64, target types.LikeTarget) (*models.Like, error) {
	var item models.Like
	var err error
	if target.IsNote() {
		err = tx.Where("user_id = ? AND note_id = ? AND target_type = ?",
			userID, target.ID(), models.LikeTargetNote).First(&item).Error
	} else {
		err = tx.Where("user_id = ? AND comment_id = ? AND target_type = ?",
			userID, target.ID(), models.LikeTargetComment).First(&item).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// applyLikeCounters 按目标类型应用点赞计数增量
func (s *LikeService) applyLikeCounters(tx *gorm.DB, target types.LikeTarget, delta int64) error {
	if target.IsNote() {
		if err := incrNoteCounter(tx, target.ID(), "like_count", delta); err != nil {
			return err
		}
		return incrNoteOwnerLikeCollect(tx, target.ID(), delta)
	}
	return incrCommentLikeCount(tx, target.ID(), delta)
}

// updateCacheAfterToggle 更新点赞集合缓存，失败不影响主流程
func (s *LikeService) updateCacheAfterToggle(ctx context.Context, userID uint64, target types.LikeTarget, liked bool) {
	if !target.IsNote() {
		return
	}
	key := fmt.Sprintf(UserLikedNotesKey, userID)
	var err error
	if liked {
		pipe := s.Redis.Pipeline()
		pipe.SAdd(ctx, key, target.ID())
		pipe.Expire(ctx, key, CacheTTL)
		_, err = pipe.Exec(ctx)
	} else {
		err = s.Redis.SRem(ctx, key, target.ID()).Err()
	}
	if err != nil {
		log.L.Warn("更新点赞缓存失败", zap.Error(err), zap.Uint64("user_id", userID))
	}
}
