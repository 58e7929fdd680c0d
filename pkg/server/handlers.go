package server

import (
	"Xiaoji/handler"
)

type Handlers struct {
	User    *handler.User
	Note    *handler.Note
	Like    *handler.Like
	Collect *handler.Collect
	Follow  *handler.Follow
	Comment *handler.Comment
	Message *handler.Message
}
