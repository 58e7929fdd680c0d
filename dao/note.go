package dao

import (
	"context"

	"Xiaoji/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

func (d *NoteDAO) GetByID(ctx context.Context, noteID uint64) (*models.Note, error) {
	return d.FindByWhere(ctx, "id = ?", noteID)
}

// FindByUserID 根据用户ID查询笔记列表
func (d *NoteDAO) FindByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status = 1", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	return notes, err
}

// FindByIDs 根据 ID 列表查询笔记
func (d *NoteDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Note, error) {
	if len(ids) == 0 {
		return []*models.Note{}, nil
	}
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&notes).Error
	return notes, err
}
