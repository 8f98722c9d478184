package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用的单表操作，各 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Model 带上下文并指定表
func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindByWhere 查询单条，不存在返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).Take(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll 按条件查询多条
func (r *Repo[T]) FindAll(ctx context.Context, order string, where string, args ...any) ([]*T, error) {
	items := make([]*T, 0)
	tx := r.Db.WithContext(ctx)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindCount 统计数量
func (r *Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	return count, err
}

// IsExist 是否存在满足条件的记录
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	count, err := r.FindCount(ctx, where, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// Transaction 事务
func (r *Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
