package dao

import (
	"context"
	"testing"
	"time"

	"Blog/models"
	"Blog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_CreateAndCount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	comments := NewComment(db)
	posts := NewPosts(db)
	post := seedPost(t, db, "alice")

	for i := 0; i < 3; i++ {
		err := comments.CreateAndCount(ctx, &models.Comment{
			Body:              "nice",
			PostID:            post.PostID,
			CommenterUsername: "bob",
			CommentDatetime:   utils.Now(),
		})
		require.NoError(t, err)

		got, err := posts.GetByID(ctx, post.PostID)
		require.NoError(t, err)
		assert.Equal(t, uint32(i+1), got.Comments)
	}

	list, err := comments.ListByPost(ctx, post.PostID)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestComment_CreateAndCountMissingPost(t *testing.T) {
	ctx := context.Background()
	comments := NewComment(newTestDB(t))

	err := comments.CreateAndCount(ctx, &models.Comment{
		Body:              "orphan",
		PostID:            404,
		CommenterUsername: "bob",
		CommentDatetime:   utils.Now(),
	})
	assert.ErrorIs(t, err, ErrPostNotFound)

	// 事务回滚，不留下评论
	count, err := comments.FindCount(ctx, "post_id = ?", 404)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestComment_ListOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	comments := NewComment(db)
	post := seedPost(t, db, "alice")

	base := utils.Now()
	for i, body := range []string{"first", "second", "third"} {
		require.NoError(t, comments.CreateAndCount(ctx, &models.Comment{
			Body:              body,
			PostID:            post.PostID,
			CommenterUsername: "bob",
			CommentDatetime:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := comments.ListByCommenter(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Body)
	assert.Equal(t, "first", list[2].Body)

	empty, err := comments.ListByCommenter(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
