package service

import (
	"errors"
	"strings"

	"Xiaoji/models"
	"Xiaoji/pkg/log"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 计数一致性规则：关系行的增删改和它触发的计数增减必须落在同一个事务里，
// 计数列只做单条 SQL 原子增减，绝不读出来再写回去。
// 目标聚合行不存在时跳过该次计数并告警，关系行本身照常提交。

// incrNoteCounter 笔记计数列增减，下限为 0
func incrNoteCounter(tx *gorm.DB, noteID uint64, column string, delta int64) error {
	res := tx.Model(&models.Note{}).
		Where("id = ?", noteID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.L.Warn("counter target missing, skip note counter",
			zap.Uint64("note_id", noteID),
			zap.String("column", column),
			zap.Int64("delta", delta),
		)
	}
	return nil
}

// incrUserCounter 用户计数列增减，下限为 0
func incrUserCounter(tx *gorm.DB, userID uint64, column string, delta int64) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.L.Warn("counter target missing, skip user counter",
			zap.Uint64("user_id", userID),
			zap.String("column", column),
			zap.Int64("delta", delta),
		)
	}
	return nil
}

// incrCommentLikeCount 评论点赞数增减
func incrCommentLikeCount(tx *gorm.DB, commentID uint64, delta int64) error {
	res := tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.L.Warn("counter target missing, skip comment counter",
			zap.Uint64("comment_id", commentID),
			zap.Int64("delta", delta),
		)
	}
	return nil
}

// incrNoteOwnerLikeCollect 给笔记作者的获赞收藏数增减。
// 作者ID必须在当前事务里重读，不能用事务外的旧值
func incrNoteOwnerLikeCollect(tx *gorm.DB, noteID uint64, delta int64) error {
	var note models.Note
	err := tx.Select("id", "user_id").Where("id = ?", noteID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.L.Warn("counter target missing, skip owner counter",
			zap.Uint64("note_id", noteID),
			zap.Int64("delta", delta),
		)
		return nil
	}
	if err != nil {
		return err
	}
	return incrUserCounter(tx, note.UserID, "like_collect_count", delta)
}

// commentCountDelta 评论发布状态变化对笔记评论数的影响
func commentCountDelta(oldStatus, newStatus uint8) int64 {
	oldPublished := oldStatus == models.CommentStatusPublished
	newPublished := newStatus == models.CommentStatusPublished
	switch {
	case !oldPublished && newPublished:
		return 1
	case oldPublished && !newPublished:
		return -1
	default:
		return 0
	}
}

// isDuplicateKey 唯一键冲突判定，并发重复开关的败者走这里
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
