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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/me", authorize, context.Wrap(u.GetMyProfile))
	g.GET("/:user_id/profile", context.Wrap(u.GetProfile))
}

// Register 注册
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	profile, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// Login 登录，返回 access + refresh 双 token
func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	pair, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, pair)
	return nil
}

func (u *User) GetMyProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// GetProfile 查看任意用户主页
func (u *User) GetProfile(c *gin.Context) error {
	targetID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}
