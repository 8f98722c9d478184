package models

import "time"

// Post 博客文章
// comments 为冗余的评论数，和 blog_comments 在同一事务中维护
type Post struct {
	PostID         uint64    `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	Title          string    `gorm:"column:title;size:255;not null" json:"title"`
	Body           string    `gorm:"column:body;type:text" json:"body"`
	AuthorUsername string    `gorm:"column:author_username;size:64;not null;index:idx_blog_posts_author" json:"author_username"`
	PostDatetime   time.Time `gorm:"column:post_datetime;not null;index:idx_blog_posts_datetime" json:"post_datetime"`
	Comments       uint32    `gorm:"column:comments;not null;default:0" json:"comments"`
}

func (Post) TableName() string {
	return "blog_posts"
}
