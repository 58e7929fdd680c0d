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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/follow")
	g.POST("/:user_id/follow", authorize, context.Wrap(f.FollowUser))
	g.DELETE("/:user_id/follow", authorize, context.Wrap(f.UnfollowUser))
	g.POST("/:user_id/toggle", authorize, context.Wrap(f.ToggleFollow))
	g.GET("/:user_id/follow", authorize, context.Wrap(f.GetFollowStatus))
	g.GET("/list", authorize, context.Wrap(f.GetFollowingList))
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	targetUserID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	if err := f.FollowService.Follow(c.Request.Context(), userID, targetUserID); err != nil {
		return err
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

// UnfollowUser 取消关注，关系行保留只翻转状态
func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	targetUserID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), userID, targetUserID); err != nil {
		return err
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

// ToggleFollow 关注开关
func (f *Follow) ToggleFollow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	targetUserID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	following, err := f.FollowService.ToggleFollow(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"following": following})
	return nil
}

// GetFollowStatus 查询是否已关注
func (f *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	targetUserID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	isFollowing, err := f.FollowService.IsFollowing(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"is_following": isFollowing})
	return nil
}

// GetFollowingList 查询我关注的用户列表
func (f *Follow) GetFollowingList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	limit, offset := parsePaging(c)

	following, err := f.FollowService.GetFollowingList(c.Request.Context(), userID, limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, types.GetFollowingListResponse{
		Following: following,
		HasMore:   len(following) == limit,
	})
	return nil
}
