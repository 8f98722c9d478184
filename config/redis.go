package config

import "time"

// Redis Redis配置信息，Address 为空时不启用
type Redis struct {
	Address  string        `json:"address" yaml:"address"`
	Username string        `json:"username" yaml:"username"`
	Password string        `json:"password" yaml:"password"`
	Database int           `json:"database" yaml:"database"`
	LockTTL  time.Duration `json:"lock_ttl" yaml:"lock_ttl"`
}

func (r *Redis) Enabled() bool {
	return r != nil && r.Address != ""
}

// ReactionLockTTL 点赞锁过期时间
func (r *Redis) ReactionLockTTL() time.Duration {
	if r == nil || r.LockTTL <= 0 {
		return 5 * time.Second
	}
	return r.LockTTL
}
