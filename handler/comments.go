package handler

import (
	"Blog/pkg/context"
	"Blog/pkg/response"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	CommentsService service.ICommentsService
}

func (h *CommentsHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/CreateComment", context.Wrap(h.CreateComment))
	r.POST("/Comments", context.Wrap(h.ListComments))
	r.GET("/Comments/:username", context.Wrap(h.ListUserComments))
}

// CreateComment 发表评论
func (h *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if _, err := h.CommentsService.CreateComment(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Created(c, "Comment posted successfully")
	return nil
}

// ListComments 文章下的评论
func (h *CommentsHandler) ListComments(c *gin.Context) error {
	var req types.ListCommentsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	comments, err := h.CommentsService.ListByPost(c.Request.Context(), req.PostID.Uint64())
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// ListUserComments 用户发表过的评论
func (h *CommentsHandler) ListUserComments(c *gin.Context) error {
	comments, err := h.CommentsService.ListByCommenter(c.Request.Context(), c.Param("username"))
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}
