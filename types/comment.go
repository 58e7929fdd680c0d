package types

import "time"

type CreateCommentRequest struct {
	NoteID    uint64  `json:"note_id" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	ReplyToID *uint64 `json:"reply_to_id"`
}

type CommentAuthor struct {
	ID       uint64 `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// ReplyToPreview 被回复评论的摘要
type ReplyToPreview struct {
	ID      uint64         `json:"id"`
	Content string         `json:"content"`
	Author  *CommentAuthor `json:"author,omitempty"`
}

type CommentResponse struct {
	ID            uint64          `json:"id"`
	NoteID        uint64          `json:"note_id"`
	Content       string          `json:"content"`
	Level         uint8           `json:"level"`
	RootCommentID *uint64         `json:"root_comment_id,omitempty"`
	LikeCount     int64           `json:"like_count"`
	IsLiked       bool            `json:"is_liked"`
	Author        *CommentAuthor  `json:"author,omitempty"`
	ReplyTo       *ReplyToPreview `json:"reply_to,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CommentsListResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	NextCursor int64              `json:"next_cursor"`
	HasMore    bool               `json:"has_more"`
}

type UpdateCommentStatusRequest struct {
	Status uint8 `json:"status"`
}

type GetCommentsRequest struct {
	NoteID   uint64 `form:"note_id" binding:"required"`
	Cursor   int64  `form:"cursor"`
	PageSize int    `form:"page_size"`
}
