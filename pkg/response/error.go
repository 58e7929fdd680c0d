package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 参数错误
func NewBadRequest(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

// 资源不存在
func NewNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// 并发冲突（唯一键竞争等），调用方可重试
func NewConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

func NewUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func codeOf(err error) int {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	return 0
}

func IsBadRequest(err error) bool {
	return codeOf(err) == http.StatusBadRequest
}

func IsNotFound(err error) bool {
	return codeOf(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return codeOf(err) == http.StatusConflict
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
