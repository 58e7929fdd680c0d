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

type Message struct {
	Config         *config.Config
	MessageService service.IMessageService
}

func (m *Message) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(m.Config.Jwt.Secret))
	g := r.Group("/v1/messages")
	g.POST("/send", authorize, context.Wrap(m.SendMessage))
	g.GET("/conversation/:user_id", authorize, context.Wrap(m.GetConversation))
	g.POST("/conversation/:user_id/read", authorize, context.Wrap(m.MarkConversationRead))
	g.GET("/unread/count", authorize, context.Wrap(m.GetUnreadCount))
}

// SendMessage 发私信，会话ID由双方用户ID推导
func (m *Message) SendMessage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	msg, err := m.MessageService.SendMessage(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, msg)
	return nil
}

// GetConversation 与某人的会话消息(游标分页，新的在前)
func (m *Message) GetConversation(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	otherID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	limit, _ := parsePaging(c)
	list, err := m.MessageService.ListConversation(c.Request.Context(), userID, otherID, parseCursor(c), limit)
	if err != nil {
		return err
	}

	response.Success(c, list)
	return nil
}

// MarkConversationRead 把对方发来的消息全部标为已读
func (m *Message) MarkConversationRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}
	otherID, err := parseUint64Param(c, "user_id")
	if err != nil {
		return err
	}

	updated, err := m.MessageService.MarkConversationRead(c.Request.Context(), userID, otherID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"updated": updated})
	return nil
}

func (m *Message) GetUnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorized("未登录")
	}

	count, err := m.MessageService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"unread_count": count})
	return nil
}
