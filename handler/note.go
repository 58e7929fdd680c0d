package handler

import (
	"net/http"

	"Xiaoji/config"
	"Xiaoji/middleware"
	"Xiaoji/pkg/context"
	"Xiaoji/pkg/response"
	"Xiaoji/service"
	"Xiaoji/types"

	"github.com/gin-gonic/gin"
)

type Note struct {
	Config         *config.Config
	NoteService    service.INoteService
	LikeService    service.ILikeService
	CollectService service.ICollectService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))
	g := r.Group("/v1/notes")
	g.POST("/create", authorize, context.Wrap(n.CreateNote))
	g.GET("/:note_id", context.Wrap(n.GetNote))
	g.GET("/:note_id/status", authorize, context.Wrap(n.GetInteractionStatus))
	g.GET("/user/:user_id", context.Wrap(n.ListUserNotes))
	g.POST("/:note_id/delete", authorize, context.Wrap(n.DeleteNote))
}

// CreateNote 发布笔记
func (n *Note) CreateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	note, err := n.NoteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, note)
	return nil
}

// GetNote 笔记详情，计数直接来自 notes 行上的冗余列
func (n *Note) GetNote(c *gin.Context) error {
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	note, err := n.NoteService.GetNote(c.Request.Context(), noteID)
	if err != nil {
		return err
	}

	response.Success(c, note)
	return nil
}

// GetInteractionStatus 当前用户对笔记的点赞/收藏状态
func (n *Note) GetInteractionStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	liked, err := n.LikeService.IsNoteLiked(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}
	collected, err := n.CollectService.IsCollected(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	response.Success(c, types.InteractionStatus{IsLiked: liked, IsCollected: collected})
	return nil
}

func (n *Note) ListUserNotes(c *gin.Context) error {
	targetID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}
	limit, offset := parsePaging(c)

	notes, err := n.NoteService.ListUserNotes(c.Request.Context(), targetID, limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"notes": notes, "has_more": len(notes) == limit})
	return nil
}

// DeleteNote 删除笔记，只有作者可以删
func (n *Note) DeleteNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	if err := n.NoteService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
