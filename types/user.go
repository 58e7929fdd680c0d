package types

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserProfile 用户主页信息，计数来自 users 行上的冗余缓存
type UserProfile struct {
	ID               uint64 `json:"id"`
	Username         string `json:"username"`
	Nickname         string `json:"nickname"`
	Avatar           string `json:"avatar"`
	FollowCount      int64  `json:"follow_count"`
	FansCount        int64  `json:"fans_count"`
	LikeCollectCount int64  `json:"like_collect_count"`
}

type FollowingItem struct {
	UserID   uint64 `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// GetFollowingListResponse 关注列表按 page/page_size 翻页
type GetFollowingListResponse struct {
	Following []*FollowingItem `json:"following"`
	HasMore   bool             `json:"has_more"`
}
