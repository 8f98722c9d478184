package handler

import (
	"Blog/pkg/context"
	"Blog/pkg/response"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type Reaction struct {
	ReactionService service.IReactionService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	// 文章
	r.POST("/CurrentReaction", context.Wrap(h.CurrentReaction))
	r.POST("/LikeDislikeCount", context.Wrap(h.LikeDislikeCount))
	r.POST("/processReaction", context.Wrap(h.ProcessReaction))

	// 评论
	r.POST("/CurrentCommentReaction", context.Wrap(h.CurrentCommentReaction))
	r.POST("/CommentLikeDislikeCount", context.Wrap(h.CommentLikeDislikeCount))
	r.POST("/processCommentReaction", context.Wrap(h.ProcessCommentReaction))
}

// CurrentReaction 返回 "Like" / "Dislike" / "None"
func (h *Reaction) CurrentReaction(c *gin.Context) error {
	var req types.CurrentReactionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	reaction, err := h.ReactionService.CurrentPostReaction(c.Request.Context(), req.CurrentUser, req.PostID.Uint64())
	if err != nil {
		return err
	}
	response.Success(c, reaction)
	return nil
}

func (h *Reaction) LikeDislikeCount(c *gin.Context) error {
	var req types.ReactionCountRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	count, err := h.ReactionService.CountPostReactions(c.Request.Context(), req.PostID.Uint64())
	if err != nil {
		return err
	}
	response.Success(c, count)
	return nil
}

func (h *Reaction) ProcessReaction(c *gin.Context) error {
	var req types.ProcessReactionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if _, err := h.ReactionService.TogglePostReaction(c.Request.Context(), req.Username, req.PostID.Uint64(), req.ClickedReaction); err != nil {
		return err
	}
	response.Success(c, gin.H{})
	return nil
}

func (h *Reaction) CurrentCommentReaction(c *gin.Context) error {
	var req types.CurrentCommentReactionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	reaction, err := h.ReactionService.CurrentCommentReaction(c.Request.Context(), req.CurrentUser, req.CommentID.Uint64())
	if err != nil {
		return err
	}
	response.Success(c, reaction)
	return nil
}

func (h *Reaction) CommentLikeDislikeCount(c *gin.Context) error {
	var req types.CommentReactionCountRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	count, err := h.ReactionService.CountCommentReactions(c.Request.Context(), req.CommentID.Uint64())
	if err != nil {
		return err
	}
	response.Success(c, count)
	return nil
}

func (h *Reaction) ProcessCommentReaction(c *gin.Context) error {
	var req types.ProcessCommentReactionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if _, err := h.ReactionService.ToggleCommentReaction(c.Request.Context(), req.Username, req.CommentID.Uint64(), req.ClickedReaction); err != nil {
		return err
	}
	response.Success(c, gin.H{})
	return nil
}
