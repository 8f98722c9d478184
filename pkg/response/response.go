package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 失败时的响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 成功时只带提示语的响应体
type MessageBody struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, MessageBody{Message: msg})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, ErrorBody{Error: msg})
}
