package service

import (
	"context"
	"strings"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/response"
	"Xiaoji/pkg/snowflake"
	"Xiaoji/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	CreateNote(ctx context.Context, userID uint64, req *types.CreateNoteRequest) (*types.NoteResponse, error)
	GetNote(ctx context.Context, noteID uint64) (*types.NoteResponse, error)
	ListUserNotes(ctx context.Context, userID uint64, limit, offset int) ([]*types.NoteResponse, error)
	DeleteNote(ctx context.Context, noteID, userID uint64) error
}

type NoteService struct {
	DB      *gorm.DB
	NoteDAO *dao.NoteDAO
}

func (s *NoteService) CreateNote(ctx context.Context, userID uint64, req *types.CreateNoteRequest) (*types.NoteResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewBadRequest("标题不能为空")
	}
	if len(title) > 100 {
		return nil, response.NewBadRequest("标题不能超过100个字符")
	}

	note := models.Note{
		ID:      uint64(snowflake.GenID()),
		UserID:  userID,
		Title:   title,
		Content: req.Content,
		Status:  1,
	}
	if len(req.MediaData) > 0 {
		note.MediaData = datatypes.JSON(req.MediaData)
	}

	if err := s.NoteDAO.Create(ctx, &note); err != nil {
		return nil, err
	}
	return buildNoteResponse(&note), nil
}

func (s *NoteService) GetNote(ctx context.Context, noteID uint64) (*types.NoteResponse, error) {
	note, err := s.NoteDAO.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, response.NewNotFound("笔记不存在")
	}
	return buildNoteResponse(note), nil
}

func (s *NoteService) ListUserNotes(ctx context.Context, userID uint64, limit, offset int) ([]*types.NoteResponse, error) {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	notes, err := s.NoteDAO.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*types.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, buildNoteResponse(note))
	}
	return result, nil
}

// DeleteNote 下架笔记（仅作者本人），软删除
func (s *NoteService) DeleteNote(ctx context.Context, noteID, userID uint64) error {
	note, err := s.NoteDAO.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return response.NewNotFound("笔记不存在")
	}
	if note.UserID != userID {
		return response.NewError(403, "无权删除该笔记")
	}

	return s.NoteDAO.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", noteID).
		Update("status", 0).Error
}

func buildNoteResponse(note *models.Note) *types.NoteResponse {
	return &types.NoteResponse{
		ID:           note.ID,
		UserID:       note.UserID,
		Title:        note.Title,
		Content:      note.Content,
		MediaData:    []byte(note.MediaData),
		LikeCount:    note.LikeCount,
		CommentCount: note.CommentCount,
		CollectCount: note.CollectCount,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}
