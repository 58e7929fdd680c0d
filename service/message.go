package service

import (
	"context"
	"fmt"
	"strings"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/pkg/response"
	"Xiaoji/pkg/snowflake"
	"Xiaoji/types"
)

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	SendMessage(ctx context.Context, senderID uint64, req *types.SendMessageRequest) (*types.MessageResponse, error)
	ListConversation(ctx context.Context, userID, otherID uint64, cursor int64, pageSize int) (*types.ConversationMessagesResponse, error)
	MarkConversationRead(ctx context.Context, userID, otherID uint64) (int64, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type MessageService struct {
	MessageDAO *dao.MessageDAO
	UserDAO    *dao.Users
}

// ConversationID 由两个用户ID推导会话ID，小的在前。
// 纯函数：同一对用户不论谁发给谁都得到同一个会话
func ConversationID(uid1, uid2 uint64) string {
	if uid1 < uid2 {
		return fmt.Sprintf("%d_%d", uid1, uid2)
	}
	return fmt.Sprintf("%d_%d", uid2, uid1)
}

// SendMessage 发送私信，会话ID在落库时推导，不接受客户端提交
func (s *MessageService) SendMessage(ctx context.Context, senderID uint64, req *types.SendMessageRequest) (*types.MessageResponse, error) {
	if req.ReceiverID == 0 {
		return nil, response.NewBadRequest("接收者ID不能为空")
	}
	if req.ReceiverID == senderID {
		return nil, response.NewBadRequest("不能给自己发送消息")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewBadRequest("消息内容不能为空")
	}
	if req.ContentType > models.MessageContentFile {
		return nil, response.NewBadRequest("内容类型无效")
	}
	if req.ContentType != models.MessageContentText && req.MediaURL == "" {
		return nil, response.NewBadRequest("非文本消息必须提供媒体URL")
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewNotFound("用户不存在")
	}

	msg := models.Message{
		ID:             uint64(snowflake.GenID()),
		SenderID:       senderID,
		ReceiverID:     req.ReceiverID,
		ConversationID: ConversationID(senderID, req.ReceiverID),
		Content:        content,
		ContentType:    req.ContentType,
		MediaURL:       req.MediaURL,
		Status:         1,
	}
	if err := s.MessageDAO.Create(ctx, &msg); err != nil {
		return nil, err
	}
	return buildMessageResponse(&msg), nil
}

// ListConversation 拉取与某个用户的会话消息（按时间倒序，游标分页）
func (s *MessageService) ListConversation(ctx context.Context, userID, otherID uint64, cursor int64, pageSize int) (*types.ConversationMessagesResponse, error) {
	if otherID == 0 {
		return nil, response.NewBadRequest("用户ID不能为空")
	}
	if otherID == userID {
		return nil, response.NewBadRequest("不能查询和自己的会话")
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > types.MaxPageSize {
		pageSize = types.MaxPageSize
	}

	conversationID := ConversationID(userID, otherID)
	messages, err := s.MessageDAO.ListByConversation(ctx, conversationID, cursor, pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ConversationMessagesResponse{
		ConversationID: conversationID,
		Messages:       make([]*types.MessageResponse, 0, len(messages)),
		HasMore:        len(messages) == pageSize,
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, buildMessageResponse(msg))
	}
	if len(messages) > 0 {
		resp.NextCursor = messages[len(messages)-1].CreatedAt.UnixNano()
	}
	return resp, nil
}

// MarkConversationRead 把对方发来的消息全部置为已读，返回置位条数
func (s *MessageService) MarkConversationRead(ctx context.Context, userID, otherID uint64) (int64, error) {
	if otherID == 0 || otherID == userID {
		return 0, response.NewBadRequest("用户ID不合法")
	}
	return s.MessageDAO.MarkConversationRead(ctx, ConversationID(userID, otherID), userID)
}

func (s *MessageService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.MessageDAO.CountUnread(ctx, userID)
}

func buildMessageResponse(msg *models.Message) *types.MessageResponse {
	return &types.MessageResponse{
		ID:             msg.ID,
		SenderID:       msg.SenderID,
		ReceiverID:     msg.ReceiverID,
		ConversationID: msg.ConversationID,
		Content:        msg.Content,
		ContentType:    msg.ContentType,
		MediaURL:       msg.MediaURL,
		IsRead:         msg.IsRead,
		CreatedAt:      msg.CreatedAt,
	}
}
