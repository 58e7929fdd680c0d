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

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (ch *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	g := r.Group("/v1/comments")
	g.POST("/create", authorize, context.Wrap(ch.CreateComment))
	g.GET("/list", context.Wrap(ch.GetComments))
	g.GET("/replies/:root_id", context.Wrap(ch.GetReplies))
	g.POST("/:comment_id/delete", authorize, context.Wrap(ch.DeleteComment))
	g.POST("/:comment_id/status", authorize, context.Wrap(ch.UpdateCommentStatus))
}

// CreateComment 创建评论。带 reply_to_id 时是回复，
// 层级和根评论由服务端推导，客户端不传
func (ch *Comment) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	comment, err := ch.CommentService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// GetComments 获取评论列表(游标分页)，登录与否都能看
func (ch *Comment) GetComments(c *gin.Context) error {
	var req types.GetCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	if req.PageSize <= 0 || req.PageSize > types.MaxPageSize {
		req.PageSize = types.DefaultPageSize
	}

	currentUserID := uint64(0)
	if v, err := context.GetUserID(c); err == nil {
		currentUserID = v
	}

	list, err := ch.CommentService.ListComments(c.Request.Context(), &req, currentUserID)
	if err != nil {
		return err
	}

	response.Success(c, list)
	return nil
}

// GetReplies 某条根评论下的全部回复
func (ch *Comment) GetReplies(c *gin.Context) error {
	rootID, err := parseUint64Param(c, "root_id")
	if err != nil {
		return err
	}

	currentUserID := uint64(0)
	if v, err := context.GetUserID(c); err == nil {
		currentUserID = v
	}

	replies, err := ch.CommentService.GetReplies(c.Request.Context(), rootID, currentUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"replies": replies})
	return nil
}

// DeleteComment 删除评论，只有作者可以删
func (ch *Comment) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	commentID, err := parseUint64Param(c, "comment_id")
	if err != nil {
		return err
	}

	if err := ch.CommentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// UpdateCommentStatus 审核状态流转，笔记评论数随发布状态同步增减
func (ch *Comment) UpdateCommentStatus(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return response.NewUnauthorized("未登录")
	}
	commentID, err := parseUint64Param(c, "comment_id")
	if err != nil {
		return err
	}

	var req types.UpdateCommentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := ch.CommentService.UpdateCommentStatus(c.Request.Context(), commentID, req.Status); err != nil {
		return err
	}

	response.Success(c, gin.H{"status": req.Status})
	return nil
}
