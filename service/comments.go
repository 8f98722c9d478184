package service

import (
	"context"
	"errors"

	"Blog/dao"
	"Blog/models"
	"Blog/pkg/log"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/types"

	"go.uber.org/zap"
)

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, req *types.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error)
	ListByCommenter(ctx context.Context, username string) ([]*models.Comment, error)
}

type CommentsService struct {
	CommentDAO *dao.Comment
}

// CreateComment 发表评论，文章评论数在同一事务内 +1
func (s *CommentsService) CreateComment(ctx context.Context, req *types.CreateCommentRequest) (*models.Comment, error) {
	if utils.IsBlank(req.InputComment) {
		return nil, response.NewValidationError(types.CreateCommentErrors{
			InputComment: "Comment can't be blank",
		})
	}

	comment := &models.Comment{
		Body:              req.InputComment,
		PostID:            req.PostID.Uint64(),
		CommenterUsername: req.CurrentUser,
		CommentDatetime:   utils.Now(),
	}
	if err := s.CommentDAO.CreateAndCount(ctx, comment); err != nil {
		if errors.Is(err, dao.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	log.L.Debug("comment created",
		zap.Uint64("comment_id", comment.CommentID),
		zap.Uint64("post_id", comment.PostID),
		zap.String("commenter", comment.CommenterUsername),
	)
	return comment, nil
}

func (s *CommentsService) ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	return s.CommentDAO.ListByPost(ctx, postID)
}

func (s *CommentsService) ListByCommenter(ctx context.Context, username string) ([]*models.Comment, error) {
	return s.CommentDAO.ListByCommenter(ctx, username)
}
