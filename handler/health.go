package handler

import (
	"Blog/pkg/context"
	"Blog/pkg/database"
	"Blog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	DB *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/planetscale", context.Wrap(h.Ping))
}

// Ping 探活，同时检查数据库连接
func (h *Health) Ping(c *gin.Context) error {
	if err := database.Ping(c.Request.Context(), h.DB); err != nil {
		return err
	}
	response.Success(c, gin.H{"msg": "This test endpoint /planetscale is working"})
	return nil
}
