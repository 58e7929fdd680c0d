package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"Xiaoji/types"

	"github.com/gin-gonic/gin"
)

type stubFollowService struct {
	items []*types.FollowingItem
}

func (s *stubFollowService) Follow(ctx context.Context, followerID, followingID uint64) error {
	return nil
}

func (s *stubFollowService) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	return nil
}

func (s *stubFollowService) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return false, nil
}

func (s *stubFollowService) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return false, nil
}

func (s *stubFollowService) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*types.FollowingItem, error) {
	if offset >= len(s.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[offset:end], nil
}

func newFollowTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Set("user_id", uint64(1))
	return c, w
}

func TestGetFollowingList_PagedResponse(t *testing.T) {
	f := &Follow{FollowService: &stubFollowService{items: []*types.FollowingItem{
		{UserID: 2}, {UserID: 3}, {UserID: 4},
	}}}

	c, w := newFollowTestContext(t, "/api/v1/follow/list?page=1&page_size=2")
	if err := f.GetFollowingList(c); err != nil {
		t.Fatalf("get following list: %v", err)
	}

	var resp struct {
		Code int                            `json:"code"`
		Data types.GetFollowingListResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Code != 0 {
		t.Fatalf("expected code 0, got %d", resp.Code)
	}
	if len(resp.Data.Following) != 2 {
		t.Fatalf("expected 2 items on first page, got %d", len(resp.Data.Following))
	}
	if !resp.Data.HasMore {
		t.Fatal("expected has_more on first page")
	}
	// 翻页口径是 page/page_size，不能再冒出游标字段
	if strings.Contains(w.Body.String(), "next_cursor") {
		t.Fatal("paged listing must not expose cursor fields")
	}
}

func TestGetFollowingList_LastPage(t *testing.T) {
	f := &Follow{FollowService: &stubFollowService{items: []*types.FollowingItem{
		{UserID: 2}, {UserID: 3}, {UserID: 4},
	}}}

	c, w := newFollowTestContext(t, "/api/v1/follow/list?page=2&page_size=2")
	if err := f.GetFollowingList(c); err != nil {
		t.Fatalf("get following list: %v", err)
	}

	var resp struct {
		Data types.GetFollowingListResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data.Following) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(resp.Data.Following))
	}
	if resp.Data.HasMore {
		t.Fatal("expected has_more=false on last page")
	}
}
