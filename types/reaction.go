package types

type CurrentReactionRequest struct {
	CurrentUser string `json:"currentUser"`
	PostID      ID     `json:"post_id"`
}

type CurrentCommentReactionRequest struct {
	CurrentUser string `json:"currentUser"`
	CommentID   ID     `json:"comment_id"`
}

type ReactionCountRequest struct {
	PostID ID `json:"post_id"`
}

type CommentReactionCountRequest struct {
	CommentID ID `json:"comment_id"`
}

type ReactionCountResponse struct {
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

type ProcessReactionRequest struct {
	Username        string `json:"username"`
	PostID          ID     `json:"post_id"`
	ClickedReaction string `json:"clickedReaction"`
}

type ProcessCommentReactionRequest struct {
	Username        string `json:"username"`
	CommentID       ID     `json:"comment_id"`
	ClickedReaction string `json:"clicked_reaction"`
}

// ProcessReactionErrors 点赞参数错误
type ProcessReactionErrors struct {
	Username        string `json:"username"`
	ClickedReaction string `json:"clicked_reaction"`
}

func (e ProcessReactionErrors) HasError() bool {
	return e != ProcessReactionErrors{}
}
