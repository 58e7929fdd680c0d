package dao

import (
	"context"
	"time"

	"Xiaoji/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetByID 根据ID获取评论，已删除的视为不存在
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	return d.FindByWhere(ctx, "id = ? AND status <> ?", commentID, models.CommentStatusDeleted)
}

// ListByNoteCursor 游标分页获取笔记下已发布的评论（按时间倒序）
func (d *CommentDAO) ListByNoteCursor(ctx context.Context, noteID uint64, cursor int64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("note_id = ? AND status = ?", noteID, models.CommentStatusPublished)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// ListRepliesByRoot 获取根评论下的回复（按时间正序）
func (d *CommentDAO) ListRepliesByRoot(ctx context.Context, rootID uint64, limit int) ([]*models.Comment, error) {
	var replies []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("root_comment_id = ? AND status = ?", rootID, models.CommentStatusPublished).
		Order("created_at ASC").
		Limit(limit).
		Find(&replies).Error
	return replies, err
}

// BatchGetByIDs 批量查询评论（用于回复预览）
func (d *CommentDAO) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Comment, error) {
	result := make(map[uint64]*models.Comment)
	if len(ids) == 0 {
		return result, nil
	}

	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		result[comment.ID] = comment
	}
	return result, nil
}
