package context

import (
	"errors"
	"net/http"

	"Blog/pkg/log"
	"Blog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的 handler 转成 gin.HandlerFunc，统一处理错误响应
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}

		// 字段校验错误
		var ve *response.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, ve.Fields)
			return
		}

		// 业务错误
		var be *response.BizError
		if errors.As(err, &be) {
			response.Fail(c, be.Code, be.Msg)
			return
		}

		log.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Fail(c, http.StatusInternalServerError, response.InternalMsg)
	}
}
