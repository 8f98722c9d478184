package response

import (
	"net/http"

	"Blog/pkg/log"
	"Blog/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InternalMsg 500 时返回给前端的统一文案
const InternalMsg = "An error occurred"

// BizError 业务错误，Code 即 HTTP 状态码
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

// ValidationError 字段校验失败，Fields 原样作为 400 响应体
type ValidationError struct {
	Fields any
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(fields any) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorMiddleware 捕获 panic，记录调用栈并返回 500
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r)),
				)
				Abort(c, http.StatusInternalServerError, InternalMsg)
			}
		}()

		c.Next()
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: msg})
}
