package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Blog/config"
	"Blog/dao"
	"Blog/dao/cache"
	"Blog/models"
	"Blog/pkg/log"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	SubjectPost    = "post"
	SubjectComment = "comment"

	reactionLockKey = "lock:reaction:%s:%s:%d" // subject, username, subject id
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	CurrentPostReaction(ctx context.Context, username string, postID uint64) (models.ReactionType, error)
	CountPostReactions(ctx context.Context, postID uint64) (*types.ReactionCountResponse, error)
	TogglePostReaction(ctx context.Context, username string, postID uint64, clicked string) (models.ReactionType, error)

	CurrentCommentReaction(ctx context.Context, username string, commentID uint64) (models.ReactionType, error)
	CountCommentReactions(ctx context.Context, commentID uint64) (*types.ReactionCountResponse, error)
	ToggleCommentReaction(ctx context.Context, username string, commentID uint64, clicked string) (models.ReactionType, error)
}

type ReactionService struct {
	Config             *config.Config
	Redis              *redis.Client
	CountCache         *cache.ReactionCountStorage
	PostReactionDAO    *dao.PostReactions
	CommentReactionDAO *dao.CommentReactions
}

func (s *ReactionService) CurrentPostReaction(ctx context.Context, username string, postID uint64) (models.ReactionType, error) {
	return s.PostReactionDAO.Current(ctx, username, postID)
}

func (s *ReactionService) CountPostReactions(ctx context.Context, postID uint64) (*types.ReactionCountResponse, error) {
	return s.count(ctx, SubjectPost, postID, s.PostReactionDAO.Count)
}

func (s *ReactionService) TogglePostReaction(ctx context.Context, username string, postID uint64, clicked string) (models.ReactionType, error) {
	return s.toggle(ctx, SubjectPost, username, postID, clicked, s.PostReactionDAO.Toggle)
}

func (s *ReactionService) CurrentCommentReaction(ctx context.Context, username string, commentID uint64) (models.ReactionType, error) {
	return s.CommentReactionDAO.Current(ctx, username, commentID)
}

func (s *ReactionService) CountCommentReactions(ctx context.Context, commentID uint64) (*types.ReactionCountResponse, error) {
	return s.count(ctx, SubjectComment, commentID, s.CommentReactionDAO.Count)
}

func (s *ReactionService) ToggleCommentReaction(ctx context.Context, username string, commentID uint64, clicked string) (models.ReactionType, error) {
	return s.toggle(ctx, SubjectComment, username, commentID, clicked, s.CommentReactionDAO.Toggle)
}

type countFunc func(ctx context.Context, subjectID uint64) (int64, int64, error)

// count 先查缓存，未命中再走一次分组查询并回填
// 查库前记下版本号，期间有点击提交时放弃回填
func (s *ReactionService) count(ctx context.Context, subject string, subjectID uint64, fn countFunc) (*types.ReactionCountResponse, error) {
	if likes, dislikes, ok := s.CountCache.Get(ctx, subject, subjectID); ok {
		return &types.ReactionCountResponse{LikeCount: likes, DislikeCount: dislikes}, nil
	}

	version, verErr := s.CountCache.Version(ctx, subject, subjectID)
	if verErr != nil {
		log.L.Warn("get reaction count version", zap.String("subject", subject), zap.Uint64("subject_id", subjectID), zap.Error(verErr))
	}

	likes, dislikes, err := fn(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if verErr == nil {
		if _, err := s.CountCache.SetIfVersion(ctx, subject, subjectID, version, likes, dislikes); err != nil {
			log.L.Warn("set reaction count cache", zap.String("subject", subject), zap.Uint64("subject_id", subjectID), zap.Error(err))
		}
	}
	return &types.ReactionCountResponse{LikeCount: likes, DislikeCount: dislikes}, nil
}

type toggleFunc func(ctx context.Context, username string, subjectID uint64, clicked models.ReactionType) (models.ReactionType, error)

func (s *ReactionService) toggle(ctx context.Context, subject, username string, subjectID uint64, clicked string, fn toggleFunc) (models.ReactionType, error) {
	reaction, parseErr := models.ParseReaction(clicked)
	errs := types.ProcessReactionErrors{
		Username:        utils.Pick(utils.IsBlank(username), "Username can't be blank"),
		ClickedReaction: utils.Pick(parseErr != nil, "Reaction must be Like or Dislike"),
	}
	if errs.HasError() {
		return models.NoReaction, response.NewValidationError(errs)
	}

	// 同一用户对同一主体的连续点击串行处理
	if s.Redis != nil {
		lockKey := fmt.Sprintf(reactionLockKey, subject, username, subjectID)
		ok, err := s.Redis.SetNX(ctx, lockKey, 1, s.lockTTL()).Result()
		if err != nil {
			return models.NoReaction, fmt.Errorf("acquire reaction lock: %w", err)
		}
		if !ok {
			return models.NoReaction, ErrReactionProcessing
		}
		defer func() {
			_ = s.Redis.Del(context.WithoutCancel(ctx), lockKey).Err()
		}()
	}

	next, err := fn(ctx, username, subjectID, reaction)
	if err != nil {
		// 无锁时并发点击，被数据库拒绝的一方让客户端重试
		if errors.Is(err, dao.ErrReactionConflict) {
			return models.NoReaction, ErrReactionProcessing
		}
		return models.NoReaction, err
	}

	if err := s.CountCache.Invalidate(context.WithoutCancel(ctx), subject, subjectID); err != nil {
		log.L.Warn("invalidate reaction count cache", zap.String("subject", subject), zap.Uint64("subject_id", subjectID), zap.Error(err))
	}

	log.L.Debug("reaction toggled",
		zap.String("subject", subject),
		zap.Uint64("subject_id", subjectID),
		zap.String("username", username),
		zap.Stringer("clicked", reaction),
		zap.Stringer("result", next),
	)
	return next, nil
}

func (s *ReactionService) lockTTL() time.Duration {
	if s.Config == nil {
		return (*config.Redis)(nil).ReactionLockTTL()
	}
	return s.Config.Redis.ReactionLockTTL()
}
