package types

// CreateCommentRequest 发表评论
type CreateCommentRequest struct {
	CurrentUser  string `json:"currentUser"`
	PostID       ID     `json:"post_id"`
	InputComment string `json:"inputComment"`
}

type CreateCommentErrors struct {
	InputComment string `json:"inputComment"`
}

// ListCommentsRequest 获取文章评论
type ListCommentsRequest struct {
	PostID ID `json:"post_id"`
}
