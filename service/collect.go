package service

import (
	"context"
	"errors"
	"fmt"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/log"
	"Xiaoji/pkg/response"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ICollectService = (*CollectService)(nil)

type ICollectService interface {
	ToggleCollect(ctx context.Context, userID, noteID uint64) (bool, error)
	IsCollected(ctx context.Context, userID, noteID uint64) (bool, error)
	GetUserCollections(ctx context.Context, userID uint64, limit, offset int) ([]*models.Note, int64, error)
}

type CollectService struct {
	DB            *gorm.DB
	CollectionDAO *dao.CollectionDAO
	NoteDAO       *dao.NoteDAO
	Redis         *redis.Client
}

// ToggleCollect 收藏开关，与点赞相同的删除式切换：
// 未收藏则创建并 +1（笔记收藏数、作者获赞收藏数），已收藏则删行并 -1
func (s *CollectService) ToggleCollect(ctx context.Context, userID, noteID uint64) (bool, error) {
	if noteID == 0 {
		return false, response.NewBadRequest("笔记ID不能为空")
	}

	exist, err := s.NoteDAO.IsExist(ctx, "id = ?", noteID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.NewNotFound("笔记不存在")
	}

	var collected bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Collection
		err := tx.Where("user_id = ? AND note_id = ?", userID, noteID).First(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if item.ID == 0 {
			item = models.Collection{UserID: userID, NoteID: noteID, Status: 1}
			if err := tx.Create(&item).Error; err != nil {
				if isDuplicateKey(err) {
					collected = true
					return nil
				}
				return err
			}
			collected = true
			if err := incrNoteCounter(tx, noteID, "collect_count", 1); err != nil {
				return err
			}
			return incrNoteOwnerLikeCollect(tx, noteID, 1)
		}

		res := tx.Delete(&models.Collection{}, "id = ?", item.ID)
		if res.Error != nil {
			return res.Error
		}
		collected = false
		if res.RowsAffected == 0 {
			// 并发下另一个请求已取消，计数由它负责
			return nil
		}
		if err := incrNoteCounter(tx, noteID, "collect_count", -1); err != nil {
			return err
		}
		return incrNoteOwnerLikeCollect(tx, noteID, -1)
	})
	if err != nil {
		return false, err
	}

	s.updateCacheAfterToggle(ctx, userID, noteID, collected)
	return collected, nil
}

// IsCollected 先查 Redis 集合，未命中回源数据库
func (s *CollectService) IsCollected(ctx context.Context, userID, noteID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	key := fmt.Sprintf(UserCollectedNotesKey, userID)
	exists, err := s.Redis.SIsMember(ctx, key, noteID).Result()
	if err == nil && exists {
		return true, nil
	}

	collected, err := s.CollectionDAO.IsCollected(ctx, userID, noteID)
	if err != nil {
		return false, err
	}
	if collected {
		s.Redis.SAdd(ctx, key, noteID)
		s.Redis.Expire(ctx, key, CacheTTL)
	}
	return collected, nil
}

// GetUserCollections 查询用户收藏的笔记列表（按收藏时间倒序）
func (s *CollectService) GetUserCollections(ctx context.Context, userID uint64, limit, offset int) ([]*models.Note, int64, error) {
	ids, total, err := s.CollectionDAO.ListNoteIDsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []*models.Note{}, total, nil
	}

	notes, err := s.NoteDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	// 恢复收藏时间顺序
	noteMap := make(map[uint64]*models.Note, len(notes))
	for _, note := range notes {
		noteMap[note.ID] = note
	}
	ordered := make([]*models.Note, 0, len(ids))
	for _, id := range ids {
		if n, ok := noteMap[id]; ok {
			ordered = append(ordered, n)
		}
	}
	return ordered, total, nil
}

func (s *CollectService) updateCacheAfterToggle(ctx context.Context, userID, noteID uint64, collected bool) {
	key := fmt.Sprintf(UserCollectedNotesKey, userID)
	var err error
	if collected {
		pipe := s.Redis.Pipeline()
		pipe.SAdd(ctx, key, noteID)
		pipe.Expire(ctx, key, CacheTTL)
		_, err = pipe.Exec(ctx)
	} else {
		err = s.Redis.SRem(ctx, key, noteID).Err()
	}
	if err != nil {
		log.L.Warn("更新收藏缓存失败", zap.Error(err), zap.Uint64("user_id", userID))
	}
}
