package client

import (
	"context"
	"time"

	"Blog/config"
	"Blog/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 时返回 nil，调用方需要判空
func NewRedisClient(conf *config.Config) (*redis.Client, func(), error) {
	if !conf.Redis.Enabled() {
		log.L.Warn("redis not configured, reaction lock disabled")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Address,
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		_ = client.Close()
		return nil, nil, err
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Address))

	return client, func() { _ = client.Close() }, nil
}
