package dao

import (
	"context"
	"errors"
	"fmt"

	"Blog/models"

	"gorm.io/gorm"
)

const commentOrder = "comment_datetime DESC, comment_id DESC"

// ErrPostNotFound 评论的目标文章不存在
var ErrPostNotFound = errors.New("post not found")

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// CreateAndCount 插入评论并把文章评论数 +1，两步在同一个事务里
func (d *Comment) CreateAndCount(ctx context.Context, comment *models.Comment) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("post_id = ?", comment.PostID).
			UpdateColumn("comments", gorm.Expr("comments + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("dao.Comment.CreateAndCount increment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("dao.Comment.CreateAndCount insert: %w", err)
		}
		return nil
	})
}

// ListByPost 文章下的评论，按时间倒序
func (d *Comment) ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	return d.Repo.FindAll(ctx, commentOrder, "post_id = ?", postID)
}

// ListByCommenter 某个用户发表的评论，按时间倒序
func (d *Comment) ListByCommenter(ctx context.Context, username string) ([]*models.Comment, error) {
	return d.Repo.FindAll(ctx, commentOrder, "commenter_username = ?", username)
}

// GetByID 根据ID获取评论
func (d *Comment) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	return d.Repo.FindByWhere(ctx, "comment_id = ?", commentID)
}
