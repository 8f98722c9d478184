package models

// PostReaction 文章的点赞/点踩
// 主键: reaction_username + post_id，每个用户对每篇文章最多一条
type PostReaction struct {
	ReactionUsername string       `gorm:"column:reaction_username;primaryKey;size:64" json:"reaction_username"`
	PostID           uint64       `gorm:"column:post_id;primaryKey;autoIncrement:false;index:idx_blog_reactions_post" json:"post_id"`
	ReactionType     ReactionType `gorm:"column:reaction_type;type:varchar(16);not null" json:"reaction_type"`
}

func (PostReaction) TableName() string {
	return "blog_reactions"
}

// CommentReaction 评论的点赞/点踩
// 主键: reaction_username + comment_id
type CommentReaction struct {
	ReactionUsername string       `gorm:"column:reaction_username;primaryKey;size:64" json:"reaction_username"`
	CommentID        uint64       `gorm:"column:comment_id;primaryKey;autoIncrement:false;index:idx_blog_comments_reactions_comment" json:"comment_id"`
	ReactionType     ReactionType `gorm:"column:reaction_type;type:varchar(16);not null" json:"reaction_type"`
}

func (CommentReaction) TableName() string {
	return "blog_comments_reactions"
}

func (r PostReaction) Reaction() ReactionType { return r.ReactionType }

func (r CommentReaction) Reaction() ReactionType { return r.ReactionType }
