package dao

import (
	"context"
	"errors"
	"fmt"

	"Blog/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrReactionConflict 并发点击同一主体时被数据库拒绝，客户端重试即可
var ErrReactionConflict = errors.New("reaction toggle conflict")

const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// isToggleConflict 主键冲突、死锁、锁等待超时都属于并发冲突
func isToggleConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDeadlock || me.Number == mysqlErrLockWaitTimeout
	}
	return false
}

type reactionRow interface {
	Reaction() models.ReactionType
}

// ReactionRepo 文章和评论的点赞表结构相同，只有主体列不同
type ReactionRepo[T reactionRow] struct {
	Repo[T]
	subjectColumn string
	newRow        func(username string, subjectID uint64, reaction models.ReactionType) *T
}

type reactionCount struct {
	ReactionType models.ReactionType
	Total        int64
}

func (d *ReactionRepo[T]) pairWhere() string {
	return "reaction_username = ? AND " + d.subjectColumn + " = ?"
}

// Current 当前用户对该主体的态度，没有记录时返回 NoReaction
func (d *ReactionRepo[T]) Current(ctx context.Context, username string, subjectID uint64) (models.ReactionType, error) {
	return d.current(d.Db.WithContext(ctx), username, subjectID)
}

func (d *ReactionRepo[T]) current(db *gorm.DB, username string, subjectID uint64) (models.ReactionType, error) {
	rows := make([]T, 0, 1)
	err := db.Model(new(T)).
		Where(d.pairWhere(), username, subjectID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return models.NoReaction, fmt.Errorf("dao.Reaction.Current error: %w", err)
	}
	if len(rows) == 0 {
		return models.NoReaction, nil
	}
	return rows[0].Reaction(), nil
}

// Toggle 读取当前状态并写入新状态，读写在同一个事务中
// 返回切换后的状态
func (d *ReactionRepo[T]) Toggle(ctx context.Context, username string, subjectID uint64, clicked models.ReactionType) (models.ReactionType, error) {
	var next models.ReactionType
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		// MySQL 行锁；SQLite 会忽略 FOR UPDATE，由数据库级写锁保证串行
		stored, err := d.current(tx.Clauses(clause.Locking{Strength: "UPDATE"}), username, subjectID)
		if err != nil {
			return err
		}

		next = models.NextReaction(stored, clicked)
		switch {
		case stored == models.NoReaction:
			return tx.Create(d.newRow(username, subjectID, next)).Error
		case next == models.NoReaction:
			return tx.Where(d.pairWhere(), username, subjectID).Delete(new(T)).Error
		default:
			return tx.Model(new(T)).
				Where(d.pairWhere(), username, subjectID).
				Update("reaction_type", next).Error
		}
	})
	if err != nil {
		// 两个首次点击都对不存在的行加 FOR UPDATE 时，InnoDB 会以死锁回滚其中一个
		if isToggleConflict(err) {
			return models.NoReaction, fmt.Errorf("%w: %w", ErrReactionConflict, err)
		}
		return models.NoReaction, err
	}
	return next, nil
}

// Count 一次分组查询得到点赞数和点踩数
func (d *ReactionRepo[T]) Count(ctx context.Context, subjectID uint64) (likes int64, dislikes int64, err error) {
	var rows []reactionCount
	err = d.Model(ctx).
		Select("reaction_type, COUNT(*) AS total").
		Where(d.subjectColumn+" = ?", subjectID).
		Group("reaction_type").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, fmt.Errorf("dao.Reaction.Count error: %w", err)
	}

	for _, row := range rows {
		switch row.ReactionType {
		case models.Like:
			likes = row.Total
		case models.Dislike:
			dislikes = row.Total
		}
	}
	return likes, dislikes, nil
}

type PostReactions struct {
	ReactionRepo[models.PostReaction]
}

func NewPostReactions(db *gorm.DB) *PostReactions {
	return &PostReactions{ReactionRepo: ReactionRepo[models.PostReaction]{
		Repo:          NewRepo[models.PostReaction](db),
		subjectColumn: "post_id",
		newRow: func(username string, postID uint64, reaction models.ReactionType) *models.PostReaction {
			return &models.PostReaction{ReactionUsername: username, PostID: postID, ReactionType: reaction}
		},
	}}
}

type CommentReactions struct {
	ReactionRepo[models.CommentReaction]
}

func NewCommentReactions(db *gorm.DB) *CommentReactions {
	return &CommentReactions{ReactionRepo: ReactionRepo[models.CommentReaction]{
		Repo:          NewRepo[models.CommentReaction](db),
		subjectColumn: "comment_id",
		newRow: func(username string, commentID uint64, reaction models.ReactionType) *models.CommentReaction {
			return &models.CommentReaction{ReactionUsername: username, CommentID: commentID, ReactionType: reaction}
		},
	}}
}
