package service

import (
	"context"
	"strings"
	"time"

	"Xiaoji/config"
	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/jwt"
	"Xiaoji/pkg/response"

	"Xiaoji/types"

	"golang.org/x/crypto/bcrypt"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.UserProfile, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenPair, error)
	GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error)
}

type UserService struct {
	Config  *config.Config
	UserDAO *dao.Users
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserProfile, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, response.NewBadRequest("用户名不能为空")
	}
	if len(req.Password) < 6 {
		return nil, response.NewBadRequest("密码长度至少6位")
	}

	existing, err := s.UserDAO.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewConflict("用户名已被占用")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Nickname: req.Nickname,
		Password: string(hash),
		Status:   models.UserStatusEnabled,
	}
	if user.Nickname == "" {
		user.Nickname = username
	}
	if err := s.UserDAO.Create(ctx, &user); err != nil {
		if isDuplicateKey(err) {
			return nil, response.NewConflict("用户名已被占用")
		}
		return nil, err
	}
	return buildProfile(&user), nil
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenPair, error) {
	user, err := s.UserDAO.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("用户不存在")
	}
	if user.Status != models.UserStatusEnabled {
		return nil, response.NewError(403, "账号已被禁用")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, response.NewBadRequest("用户名或密码错误")
	}

	secret := []byte(s.Config.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, user.ID, "access", time.Duration(s.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, "refresh", time.Duration(s.Config.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GetProfile 用户主页，计数直接读 users 行上的缓存列
func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("用户不存在")
	}
	return buildProfile(user), nil
}

func buildProfile(user *models.User) *types.UserProfile {
	return &types.UserProfile{
		ID:               user.ID,
		Username:         user.Username,
		Nickname:         user.Nickname,
		Avatar:           user.Avatar,
		FollowCount:      user.FollowCount,
		FansCount:        user.FansCount,
		LikeCollectCount: user.LikeCollectCount,
	}
}
