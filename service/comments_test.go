package service

import (
	"context"
	"testing"

	"Blog/dao"
	"Blog/pkg/response"
	"Blog/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsService_CreateComment(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	posts := &PostService{PostsRepo: dao.NewPosts(db)}
	comments := &CommentsService{CommentDAO: dao.NewComment(db)}

	post, err := posts.Create(ctx, "alice", &types.CreatePostRequest{Title: "t", Body: "b"})
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		_, err := comments.CreateComment(ctx, &types.CreateCommentRequest{
			CurrentUser: "bob", PostID: types.ID(post.PostID), InputComment: "hi",
		})
		require.NoError(t, err)

		got, err := posts.Get(ctx, post.PostID)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), got.Comments)
	}

	_, err = comments.CreateComment(ctx, &types.CreateCommentRequest{CurrentUser: "bob", PostID: types.ID(post.PostID)})
	var ve *response.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, types.CreateCommentErrors{InputComment: "Comment can't be blank"}, ve.Fields)

	_, err = comments.CreateComment(ctx, &types.CreateCommentRequest{CurrentUser: "bob", PostID: 404, InputComment: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	got, err := posts.Get(ctx, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.Comments)
}

func TestPostService(t *testing.T) {
	ctx := context.Background()
	s := &PostService{PostsRepo: dao.NewPosts(newTestDB(t))}

	_, err := s.Create(ctx, "alice", &types.CreatePostRequest{Body: "no title"})
	var ve *response.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, types.CreatePostErrors{Title: "Title can't be blank"}, ve.Fields)

	first, err := s.Create(ctx, "alice", &types.CreatePostRequest{Title: "one"})
	require.NoError(t, err)
	second, err := s.Create(ctx, "bob", &types.CreatePostRequest{Title: "two"})
	require.NoError(t, err)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// 同一秒发布时按 id 倒序
	assert.Equal(t, second.PostID, all[0].PostID)
	assert.Equal(t, first.PostID, all[1].PostID)

	mine, err := s.ListByAuthor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "one", mine[0].Title)

	_, err = s.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
