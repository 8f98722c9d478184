package models

import "time"

// Comment 文章评论
type Comment struct {
	CommentID         uint64    `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	Body              string    `gorm:"column:body;type:text;not null" json:"body"`
	PostID            uint64    `gorm:"column:post_id;not null;index:idx_blog_comments_post" json:"post_id"`
	CommenterUsername string    `gorm:"column:commenter_username;size:64;not null;index:idx_blog_comments_commenter" json:"commenter_username"`
	CommentDatetime   time.Time `gorm:"column:comment_datetime;not null" json:"comment_datetime"`
}

func (Comment) TableName() string {
	return "blog_comments"
}
