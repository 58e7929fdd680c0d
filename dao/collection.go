package dao

import (
	"context"

	"Xiaoji/models"

	"gorm.io/gorm"
)

type CollectionDAO struct {
	Repo[models.Collection]
}

func NewCollectionDAO(db *gorm.DB) *CollectionDAO {
	return &CollectionDAO{Repo: NewRepo[models.Collection](db)}
}

// IsCollected 是否已收藏
func (d *CollectionDAO) IsCollected(ctx context.Context, userID, noteID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND note_id = ?", userID, noteID)
}

// ListNoteIDsByUser 查询用户收藏的笔记ID（按收藏时间倒序）
func (d *CollectionDAO) ListNoteIDsByUser(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err = d.Db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("note_id", &ids).Error
	return ids, total, err
}
