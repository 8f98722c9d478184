package dao

import (
	"context"
	"fmt"
	"strings"

	"Blog/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 用户名是否已被注册
func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// IsEmailExist 邮箱是否已被注册
func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

// IsEmailTakenByOther 邮箱是否被其他用户占用，自己当前的邮箱不算
func (u *Users) IsEmailTakenByOther(ctx context.Context, email, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ? AND username <> ?", email, username)
}

// SearchByPrefix 用户名前缀搜索
func (u *Users) SearchByPrefix(ctx context.Context, prefix string) ([]string, error) {
	names := make([]string, 0)
	err := u.Repo.Model(ctx).
		Where("username LIKE ? ESCAPE '!'", escapeLike(prefix)+"%").
		Order("username ASC").
		Pluck("username", &names).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Users.SearchByPrefix error: %w", err)
	}
	return names, nil
}

// UpdateProfile 更新姓名和邮箱
// MySQL 在值未变化时 RowsAffected 为 0，所以这里不用它判断用户是否存在
func (u *Users) UpdateProfile(ctx context.Context, username, firstName, lastName, email string) error {
	err := u.Repo.Model(ctx).
		Where("username = ?", username).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
			"email":      email,
		}).Error
	if err != nil {
		return fmt.Errorf("dao.Users.UpdateProfile error: %w", err)
	}
	return nil
}

// UpdatePassword 保存新的密码哈希
func (u *Users) UpdatePassword(ctx context.Context, username, hash string) error {
	err := u.Repo.Model(ctx).
		Where("username = ?", username).
		Update("password", hash).Error
	if err != nil {
		return fmt.Errorf("dao.Users.UpdatePassword error: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
