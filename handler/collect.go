package handler

import (
	"Xiaoji/config"
	"Xiaoji/middleware"
	"Xiaoji/pkg/context"
	"Xiaoji/pkg/response"
	"Xiaoji/service"

	"github.com/gin-gonic/gin"
)

type Collect struct {
	Config         *config.Config
	CollectService service.ICollectService
}

func (co *Collect) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(co.Config.Jwt.Secret))
	g := r.Group("/v1/collections")
	g.POST("/notes/:note_id/toggle", authorize, context.Wrap(co.ToggleCollect))
	g.GET("/notes/:note_id", authorize, context.Wrap(co.GetCollectStatus))
	g.GET("/list", authorize, context.Wrap(co.GetMyCollections))
}

// ToggleCollect 收藏开关：未收藏则收藏，已收藏则取消
func (co *Collect) ToggleCollect(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	collected, err := co.CollectService.ToggleCollect(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"collected": collected})
	return nil
}

func (co *Collect) GetCollectStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	noteID, err := parseUint64Param(c, "note_id")
	if err != nil {
		return err
	}

	collected, err := co.CollectService.IsCollected(c.Request.Context(), userID, noteID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"is_collected": collected})
	return nil
}

// GetMyCollections 我的收藏列表
func (co *Collect) GetMyCollections(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	limit, offset := parsePaging(c)

	notes, total, err := co.CollectService.GetUserCollections(c.Request.Context(), userID, limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"notes": notes, "total": total})
	return nil
}
