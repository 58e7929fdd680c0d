package types

import (
	"encoding/json"
	"time"
)

type CreateNoteRequest struct {
	Title     string          `json:"title" binding:"required"`
	Content   string          `json:"content"`
	MediaData json.RawMessage `json:"media_data"`
}

type NoteResponse struct {
	ID           uint64          `json:"id"`
	UserID       uint64          `json:"user_id"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	MediaData    json.RawMessage `json:"media_data,omitempty"`
	LikeCount    int64           `json:"like_count"`
	CommentCount int64           `json:"comment_count"`
	CollectCount int64           `json:"collect_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InteractionStatus 当前用户对笔记的点赞/收藏状态
type InteractionStatus struct {
	IsLiked     bool `json:"is_liked"`
	IsCollected bool `json:"is_collected"`
}
