package types

import (
	"Xiaoji/models"
)

// LikeTarget 点赞目标（笔记或评论二选一）
// 只能通过构造函数得到合法值，杜绝 note/comment 同时为空或同时存在
type LikeTarget struct {
	kind uint8
	id   uint64
}

func NoteTarget(noteID uint64) LikeTarget {
	return LikeTarget{kind: models.LikeTargetNote, id: noteID}
}

func CommentTarget(commentID uint64) LikeTarget {
	return LikeTarget{kind: models.LikeTargetComment, id: commentID}
}

func (t LikeTarget) Kind() uint8 { return t.kind }

func (t LikeTarget) ID() uint64 { return t.id }

func (t LikeTarget) IsNote() bool { return t.kind == models.LikeTargetNote }

func (t LikeTarget) IsComment() bool { return t.kind == models.LikeTargetComment }

// Valid 目标类型与目标ID是否齐备
func (t LikeTarget) Valid() bool {
	if t.id == 0 {
		return false
	}
	return t.kind == models.LikeTargetNote || t.kind == models.LikeTargetComment
}

// Row 展开为存储行的目标字段
func (t LikeTarget) Row(userID uint64) models.Like {
	like := models.Like{UserID: userID, TargetType: t.kind}
	id := t.id
	if t.IsNote() {
		like.NoteID = &id
	} else {
		like.CommentID = &id
	}
	return like
}
