package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"Blog/models"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func TestPostReactions_ToggleSequence(t *testing.T) {
	ctx := context.Background()
	repo := NewPostReactions(newTestDB(t))

	cases := []struct {
		name   string
		clicks []models.ReactionType
		want   []models.ReactionType
	}{
		{"like like", []models.ReactionType{models.Like, models.Like}, []models.ReactionType{models.Like, models.NoReaction}},
		{"like dislike", []models.ReactionType{models.Like, models.Dislike}, []models.ReactionType{models.Like, models.Dislike}},
		{"dislike like like", []models.ReactionType{models.Dislike, models.Like, models.Like}, []models.ReactionType{models.Dislike, models.Like, models.NoReaction}},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			postID := uint64(100 + i)
			for step, click := range tc.clicks {
				got, err := repo.Toggle(ctx, "alice", postID, click)
				require.NoError(t, err)
				assert.Equal(t, tc.want[step], got, "step %d", step)

				stored, err := repo.Current(ctx, "alice", postID)
				require.NoError(t, err)
				assert.Equal(t, tc.want[step], stored, "step %d", step)

				// 每个 (用户, 文章) 最多一条
				count, err := repo.FindCount(ctx, "reaction_username = ? AND post_id = ?", "alice", postID)
				require.NoError(t, err)
				assert.LessOrEqual(t, count, int64(1))
			}
		})
	}
}

func TestPostReactions_CurrentWithoutRow(t *testing.T) {
	repo := NewPostReactions(newTestDB(t))

	got, err := repo.Current(context.Background(), "nobody", 1)
	require.NoError(t, err)
	assert.Equal(t, models.NoReaction, got)
}

func TestPostReactions_Count(t *testing.T) {
	ctx := context.Background()
	repo := NewPostReactions(newTestDB(t))

	for _, user := range []string{"a", "b", "c"} {
		_, err := repo.Toggle(ctx, user, 7, models.Like)
		require.NoError(t, err)
	}
	_, err := repo.Toggle(ctx, "d", 7, models.Dislike)
	require.NoError(t, err)
	// 其他文章不影响计数
	_, err = repo.Toggle(ctx, "a", 8, models.Dislike)
	require.NoError(t, err)

	likes, dislikes, err := repo.Count(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), likes)
	assert.Equal(t, int64(1), dislikes)

	likes, dislikes, err = repo.Count(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, likes)
	assert.Zero(t, dislikes)
}

func TestCommentReactions_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentReactions(newTestDB(t))

	got, err := repo.Toggle(ctx, "bob", 3, models.Dislike)
	require.NoError(t, err)
	assert.Equal(t, models.Dislike, got)

	got, err = repo.Toggle(ctx, "bob", 3, models.Like)
	require.NoError(t, err)
	assert.Equal(t, models.Like, got)

	likes, dislikes, err := repo.Count(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Zero(t, dislikes)

	got, err = repo.Toggle(ctx, "bob", 3, models.Like)
	require.NoError(t, err)
	assert.Equal(t, models.NoReaction, got)

	exists, err := repo.IsExist(ctx, "reaction_username = ? AND comment_id = ?", "bob", 3)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIsToggleConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate key", gorm.ErrDuplicatedKey, true},
		{"deadlock", &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}, true},
		{"lock wait timeout", &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, true},
		{"wrapped deadlock", fmt.Errorf("commit: %w", &mysql.MySQLError{Number: 1213}), true},
		{"other mysql error", &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, false},
		{"not found", gorm.ErrRecordNotFound, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isToggleConflict(tc.err))
		})
	}
}

// InnoDB 把并发首次点击中的一个当作死锁回滚
func TestPostReactions_ToggleDeadlock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostReactions(db)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:deadlock", func(tx *gorm.DB) {
		_ = tx.AddError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})
	}))

	_, err := repo.Toggle(ctx, "alice", 1, models.Like)
	assert.ErrorIs(t, err, ErrReactionConflict)

	var me *mysql.MySQLError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, uint16(1213), me.Number)

	exists, err := repo.IsExist(ctx, "reaction_username = ? AND post_id = ?", "alice", 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

// 同一用户并发点击同一篇文章，最多留下一条记录
func TestPostReactions_ToggleConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewPostReactions(newTestDB(t))

	const n = 20
	var (
		mu   sync.Mutex
		errs []error
		eg   errgroup.Group
	)
	for i := 0; i < n; i++ {
		click := models.Like
		if i%3 == 0 {
			click = models.Dislike
		}
		eg.Go(func() error {
			if _, err := repo.Toggle(ctx, "alice", 42, click); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	for _, err := range errs {
		assert.ErrorIs(t, err, ErrReactionConflict)
	}

	count, err := repo.FindCount(ctx, "reaction_username = ? AND post_id = ?", "alice", 42)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, int64(1))

	current, err := repo.Current(ctx, "alice", 42)
	require.NoError(t, err)
	assert.Equal(t, count == 1, current != models.NoReaction)
}
