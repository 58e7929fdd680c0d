package dao

import (
	"Xiaoji/models"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{
		Repo: NewRepo[models.Like](db),
	}
}

// IsNoteLiked 是否点赞了笔记
func (d *LikeDAO) IsNoteLiked(ctx context.Context, userID, noteID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND note_id = ? AND target_type = ?", userID, noteID, models.LikeTargetNote)
}

// BatchCheckCommentLiked 批量检查评论点赞状态
func (d *LikeDAO) BatchCheckCommentLiked(ctx context.Context, commentIDs []uint64, userID uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if len(commentIDs) == 0 {
		return result, nil
	}

	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where("comment_id IN ? AND user_id = ? AND target_type = ?", commentIDs, userID, models.LikeTargetComment).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		if like.CommentID != nil {
			result[*like.CommentID] = true
		}
	}
	return result, nil
}
