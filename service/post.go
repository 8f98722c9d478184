package service

import (
	"context"
	"errors"

	"Blog/dao"
	"Blog/models"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/types"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, author string, req *types.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, author string) ([]*models.Post, error)
	Get(ctx context.Context, postID uint64) (*models.Post, error)
}

type PostService struct {
	PostsRepo *dao.Posts
}

func (s *PostService) Create(ctx context.Context, author string, req *types.CreatePostRequest) (*models.Post, error) {
	errs := types.CreatePostErrors{
		Title: utils.Pick(utils.IsBlank(req.Title), "Title can't be blank"),
	}
	if errs.HasError() {
		return nil, response.NewValidationError(errs)
	}

	post := &models.Post{
		Title:          req.Title,
		Body:           req.Body,
		AuthorUsername: author,
		PostDatetime:   utils.Now(),
	}
	if err := s.PostsRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.PostsRepo.ListAll(ctx)
}

func (s *PostService) ListByAuthor(ctx context.Context, author string) ([]*models.Post, error) {
	return s.PostsRepo.ListByAuthor(ctx, author)
}

func (s *PostService) Get(ctx context.Context, postID uint64) (*models.Post, error) {
	post, err := s.PostsRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}
