package handler

import (
	"net/http"
	"strconv"

	"Blog/pkg/response"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = response.NewError(http.StatusBadRequest, "Invalid request body")

// bindJSON 解析请求体，失败统一返回 400
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errInvalidBody
	}
	return nil
}

func paramUint64(c *gin.Context, key string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "Invalid "+key)
	}
	return id, nil
}
