package handler

import (
	"net/http"
	"strconv"

	"Xiaoji/pkg/response"
	"Xiaoji/types"

	"github.com/gin-gonic/gin"
)

func parseUint64Param(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return v, nil
}

// parsePaging 读取 query 里的 page / page_size，换算为 limit + offset
func parsePaging(c *gin.Context) (limit, offset int) {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	limit = types.DefaultPageSize
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= types.MaxPageSize {
		limit = v
	}
	return limit, (page - 1) * limit
}

func parseCursor(c *gin.Context) int64 {
	if v, err := strconv.ParseInt(c.Query("cursor"), 10, 64); err == nil && v > 0 {
		return v
	}
	return 0
}
