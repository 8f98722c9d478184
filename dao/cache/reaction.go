package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// 点赞数缓存过期时间，点击时主动失效，这里只是兜底
	reactionCountExpireAt = 10 * time.Minute
	// 版本号要比计数缓存活得久，否则过期后归零可能和旧快照的版本撞上
	reactionVersionExpireAt = 24 * time.Hour
)

const (
	fieldLike    = "like"
	fieldDislike = "dislike"
)

// 版本号没变才回填，避免把点击之前查到的旧数写回去
// KEYS[1] 计数 hash  KEYS[2] 版本号
// ARGV: version, like, dislike, ttl(秒)
var setIfVersionScript = redis.NewScript(`
local v = redis.call('GET', KEYS[2])
if not v then v = '0' end
if v ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'like', ARGV[2], 'dislike', ARGV[3])
redis.call('EXPIRE', KEYS[1], ARGV[4])
return 1
`)

// ReactionCountStorage 点赞/点踩数缓存，redis 未启用时所有方法都是空操作
type ReactionCountStorage struct {
	redis *redis.Client
}

func NewReactionCountStorage(rds *redis.Client) *ReactionCountStorage {
	return &ReactionCountStorage{rds}
}

func (r *ReactionCountStorage) enabled() bool {
	return r != nil && r.redis != nil
}

// Get 读取缓存，未命中时 ok 为 false
// @params subject   post / comment
// @params subjectID 文章或评论ID
func (r *ReactionCountStorage) Get(ctx context.Context, subject string, subjectID uint64) (likes, dislikes int64, ok bool) {
	if !r.enabled() {
		return 0, 0, false
	}

	vals, err := r.redis.HMGet(ctx, r.name(subject, subjectID), fieldLike, fieldDislike).Result()
	if err != nil || len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return 0, 0, false
	}

	likes, err = parseCount(vals[0])
	if err != nil {
		return 0, 0, false
	}
	dislikes, err = parseCount(vals[1])
	if err != nil {
		return 0, 0, false
	}
	return likes, dislikes, true
}

func parseCount(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected cache value %T", v)
	}
	return strconv.ParseInt(s, 10, 64)
}

// Version 查库之前读取版本号，回填时带回来
func (r *ReactionCountStorage) Version(ctx context.Context, subject string, subjectID uint64) (string, error) {
	if !r.enabled() {
		return "0", nil
	}

	v, err := r.redis.Get(ctx, r.versionName(subject, subjectID)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return v, err
}

// SetIfVersion 版本号未变化时写入缓存，返回是否写入
func (r *ReactionCountStorage) SetIfVersion(ctx context.Context, subject string, subjectID uint64, version string, likes, dislikes int64) (bool, error) {
	if !r.enabled() {
		return false, nil
	}

	keys := []string{r.name(subject, subjectID), r.versionName(subject, subjectID)}
	n, err := setIfVersionScript.Run(ctx, r.redis, keys,
		version, likes, dislikes, int64(reactionCountExpireAt/time.Second)).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Invalidate 点击提交后调用：版本号 +1 并删除计数缓存
func (r *ReactionCountStorage) Invalidate(ctx context.Context, subject string, subjectID uint64) error {
	if !r.enabled() {
		return nil
	}

	versionName := r.versionName(subject, subjectID)
	_, err := r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionName)
		pipe.Expire(ctx, versionName, reactionVersionExpireAt)
		pipe.Del(ctx, r.name(subject, subjectID))
		return nil
	})
	return err
}

// blog:reaction:count:subject:id
func (r *ReactionCountStorage) name(subject string, subjectID uint64) string {
	return fmt.Sprintf("blog:reaction:count:%s:%d", subject, subjectID)
}

// blog:reaction:count:ver:subject:id
func (r *ReactionCountStorage) versionName(subject string, subjectID uint64) string {
	return fmt.Sprintf("blog:reaction:count:ver:%s:%d", subject, subjectID)
}
