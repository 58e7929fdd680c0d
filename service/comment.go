package service

import (
	"context"
	"strings"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/response"
	"Xiaoji/pkg/snowflake"
	"Xiaoji/types"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	ListComments(ctx context.Context, req *types.GetCommentsRequest, currentUserID uint64) (*types.CommentsListResponse, error)
	GetReplies(ctx context.Context, rootID uint64, currentUserID uint64) ([]*types.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID uint64) error
	UpdateCommentStatus(ctx context.Context, commentID uint64, status uint8) error
}

type CommentService struct {
	DB         *gorm.DB
	CommentDAO *dao.CommentDAO
	NoteDAO    *dao.NoteDAO
	UserDAO    *dao.Users
	LikeDAO    *dao.LikeDAO
}

// resolveThread 由被回复的评论推导新评论的层级与根评论。
// 回复根评论挂在它下面；回复回复则继承对方的根，链条被压平成两级
func resolveThread(replyTo *models.Comment) (level uint8, rootID uint64) {
	if replyTo.Level == models.CommentLevelRoot {
		return models.CommentLevelReply, replyTo.ID
	}
	if replyTo.RootCommentID != nil {
		return models.CommentLevelReply, *replyTo.RootCommentID
	}
	// level=2 却没有根，数据已坏，退化为挂在对方自身下
	return models.CommentLevelReply, replyTo.ID
}

// CreateComment 发表评论。评论行与笔记评论数 +1 在同一事务内提交
func (s *CommentService) CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	if req.NoteID == 0 {
		return nil, response.NewBadRequest("笔记ID不能为空")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewBadRequest("评论内容不能为空")
	}
	if len(content) > 1000 {
		return nil, response.NewBadRequest("评论内容不能超过1000个字符")
	}

	exist, err := s.NoteDAO.IsExist(ctx, "id = ?", req.NoteID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewNotFound("笔记不存在")
	}

	comment := models.Comment{
		ID:       uint64(snowflake.GenID()),
		NoteID:   req.NoteID,
		AuthorID: userID,
		Content:  content,
		Level:    models.CommentLevelRoot,
		Status:   models.CommentStatusPublished,
	}

	if req.ReplyToID != nil {
		replyTo, err := s.CommentDAO.GetByID(ctx, *req.ReplyToID)
		if err != nil {
			return nil, err
		}
		if replyTo == nil {
			return nil, response.NewNotFound("被回复的评论不存在")
		}
		if replyTo.NoteID != req.NoteID {
			return nil, response.NewBadRequest("不能回复其他笔记下的评论")
		}

		level, rootID := resolveThread(replyTo)
		comment.Level = level
		comment.RootCommentID = &rootID
		comment.ReplyToID = req.ReplyToID
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		// 新评论默认已发布，笔记评论数 +1
		return incrNoteCounter(tx, comment.NoteID, "comment_count", 1)
	})
	if err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, &comment)
}

// ListComments 游标分页查询笔记评论，附带作者与被回复评论摘要
func (s *CommentService) ListComments(ctx context.Context, req *types.GetCommentsRequest, currentUserID uint64) (*types.CommentsListResponse, error) {
	if req.PageSize <= 0 {
		req.PageSize = types.DefaultPageSize
	}
	if req.PageSize > types.MaxPageSize {
		req.PageSize = types.MaxPageSize
	}

	comments, err := s.CommentDAO.ListByNoteCursor(ctx, req.NoteID, req.Cursor, req.PageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.CommentsListResponse{
		Comments: make([]*types.CommentResponse, 0, len(comments)),
		HasMore:  len(comments) == req.PageSize,
	}
	if len(comments) == 0 {
		return resp, nil
	}
	resp.NextCursor = comments[len(comments)-1].CreatedAt.UnixNano()

	items, err := s.buildListItems(ctx, comments, currentUserID)
	if err != nil {
		return nil, err
	}
	resp.Comments = items
	return resp, nil
}

// GetReplies 根评论下的回复列表（按时间正序），链条已压平所以一层查完
func (s *CommentService) GetReplies(ctx context.Context, rootID uint64, currentUserID uint64) ([]*types.CommentResponse, error) {
	root, err := s.CommentDAO.GetByID(ctx, rootID)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, response.NewNotFound("评论不存在")
	}

	replies, err := s.CommentDAO.ListRepliesByRoot(ctx, rootID, types.MaxPageSize)
	if err != nil {
		return nil, err
	}
	return s.buildListItems(ctx, replies, currentUserID)
}

// buildListItems 组装评论列表项：作者、被回复摘要、当前用户点赞状态
func (s *CommentService) buildListItems(ctx context.Context, comments []*models.Comment, currentUserID uint64) ([]*types.CommentResponse, error) {
	items := make([]*types.CommentResponse, 0, len(comments))
	if len(comments) == 0 {
		return items, nil
	}

	authorIDs := make([]uint64, 0, len(comments))
	commentIDs := make([]uint64, 0, len(comments))
	replyToIDs := make([]uint64, 0)
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
		commentIDs = append(commentIDs, c.ID)
		if c.ReplyToID != nil {
			replyToIDs = append(replyToIDs, *c.ReplyToID)
		}
	}

	userMap, err := s.UserDAO.BatchGetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	replyToMap, err := s.CommentDAO.BatchGetByIDs(ctx, replyToIDs)
	if err != nil {
		return nil, err
	}
	likedMap := map[uint64]bool{}
	if currentUserID != 0 {
		likedMap, err = s.LikeDAO.BatchCheckCommentLiked(ctx, commentIDs, currentUserID)
		if err != nil {
			return nil, err
		}
	}

	for _, c := range comments {
		item := &types.CommentResponse{
			ID:            c.ID,
			NoteID:        c.NoteID,
			Content:       c.Content,
			Level:         c.Level,
			RootCommentID: c.RootCommentID,
			LikeCount:     c.LikeCount,
			IsLiked:       likedMap[c.ID],
			CreatedAt:     c.CreatedAt,
		}
		if author, ok := userMap[c.AuthorID]; ok {
			item.Author = &types.CommentAuthor{
				ID:       author.ID,
				Nickname: author.Nickname,
				Avatar:   author.Avatar,
			}
		}
		if c.ReplyToID != nil {
			if replyTo, ok := replyToMap[*c.ReplyToID]; ok {
				preview := &types.ReplyToPreview{
					ID:      replyTo.ID,
					Content: replyTo.Content,
				}
				if author, ok := userMap[replyTo.AuthorID]; ok {
					preview.Author = &types.CommentAuthor{
						ID:       author.ID,
						Nickname: author.Nickname,
					}
				}
				item.ReplyTo = preview
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteComment 删除评论（仅作者本人）。已发布的评论删除时笔记评论数 -1
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewNotFound("评论不存在")
	}
	if comment.AuthorID != userID {
		return response.NewError(403, "无权删除该评论")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Comment{}, "id = ?", commentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 并发下已被删除
			return nil
		}
		if comment.Status == models.CommentStatusPublished {
			return incrNoteCounter(tx, comment.NoteID, "comment_count", -1)
		}
		return nil
	})
}

// UpdateCommentStatus 审核流转。进入已发布 +1，离开已发布 -1
func (s *CommentService) UpdateCommentStatus(ctx context.Context, commentID uint64, status uint8) error {
	switch status {
	case models.CommentStatusDeleted, models.CommentStatusPublished, models.CommentStatusPending:
	default:
		return response.NewBadRequest("状态值无效")
	}

	comment, err := s.CommentDAO.FindByWhere(ctx, "id = ?", commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewNotFound("评论不存在")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Comment{}).
			Where("id = ? AND status = ?", commentID, comment.Status).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 状态已被其他请求改走，放弃本次计数
			return nil
		}

		if delta := commentCountDelta(comment.Status, status); delta != 0 {
			return incrNoteCounter(tx, comment.NoteID, "comment_count", delta)
		}
		return nil
	})
}

func (s *CommentService) buildResponse(ctx context.Context, comment *models.Comment) (*types.CommentResponse, error) {
	resp := &types.CommentResponse{
		ID:            comment.ID,
		NoteID:        comment.NoteID,
		Content:       comment.Content,
		Level:         comment.Level,
		RootCommentID: comment.RootCommentID,
		LikeCount:     comment.LikeCount,
		CreatedAt:     comment.CreatedAt,
	}

	author, err := s.UserDAO.GetByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}
	if author != nil {
		resp.Author = &types.CommentAuthor{
			ID:       author.ID,
			Nickname: author.Nickname,
			Avatar:   author.Avatar,
		}
	}

	if comment.ReplyToID != nil {
		replyTo, err := s.CommentDAO.FindByWhere(ctx, "id = ?", *comment.ReplyToID)
		if err != nil {
			return nil, err
		}
		if replyTo != nil {
			preview := &types.ReplyToPreview{
				ID:      replyTo.ID,
				Content: replyTo.Content,
			}
			if replyAuthor, err := s.UserDAO.GetByID(ctx, replyTo.AuthorID); err == nil && replyAuthor != nil {
				preview.Author = &types.CommentAuthor{
					ID:       replyAuthor.ID,
					Nickname: replyAuthor.Nickname,
				}
			}
			resp.ReplyTo = preview
		}
	}
	return resp, nil
}
