package handler

import (
	"Xiaoji/config"
	"Xiaoji/middleware"
	"Xiaoji/pkg/context"
	"Xiaoji/pkg/response"
	"Xiaoji/service"
	"Xiaoji/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	g := r.Group("/v1/likes")
	g.POST("/notes/:note_id/toggle", authorize, context.Wrap(l.ToggleNoteLike))
	g.POST("/comments/:comment_id/toggle", authorize, context.Wrap(l.ToggleCommentLike))
	g.GET("/notes/:note_id", authorize, context.Wrap(l.GetNoteLikeStatus))
}

// ToggleNoteLike 笔记点赞开关：未赞则赞，已赞则取消
func (l *Like) ToggleNoteLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	liked, err := l.LikeService.ToggleLike(c.Request.Context(), userID, types.NoteTarget(noteID))
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": liked})
	return nil
}

// ToggleCommentLike 评论点赞开关
func (l *Like) ToggleCommentLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	commentID, err := parseUint64Param(c, "comment_id")
	if err != nil {
		return err
	}

	liked, err := l.LikeService.ToggleLike(c.Request.Context(), userID, types.CommentTarget(commentID))
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": liked})
	return nil
}

func (l *Like) GetNoteLikeStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	liked, err := l.LikeService.IsNoteLiked(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"is_liked": liked})
	return nil
}
