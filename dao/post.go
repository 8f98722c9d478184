package dao

import (
	"context"

	"Blog/models"

	"gorm.io/gorm"
)

const postOrder = "post_datetime DESC, post_id DESC"

type Posts struct {
	Repo[models.Post]
}

func NewPosts(db *gorm.DB) *Posts {
	return &Posts{Repo: NewRepo[models.Post](db)}
}

// GetByID 不存在返回 gorm.ErrRecordNotFound
func (d *Posts) GetByID(ctx context.Context, postID uint64) (*models.Post, error) {
	return d.Repo.FindByWhere(ctx, "post_id = ?", postID)
}

// ListAll 全部文章，按发布时间倒序
func (d *Posts) ListAll(ctx context.Context) ([]*models.Post, error) {
	return d.Repo.FindAll(ctx, postOrder, "")
}

// ListByAuthor 某个作者的文章，按发布时间倒序
func (d *Posts) ListByAuthor(ctx context.Context, username string) ([]*models.Post, error) {
	return d.Repo.FindAll(ctx, postOrder, "author_username = ?", username)
}
