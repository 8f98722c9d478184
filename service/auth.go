package service

import (
	"context"
	"errors"
	"fmt"

	"Blog/dao"
	"Blog/models"
	"Blog/pkg/encrypt"
	"Blog/pkg/response"
	"Blog/pkg/utils"
	"Blog/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Signup(ctx context.Context, req *types.SignupRequest) error
	Login(ctx context.Context, req *types.LoginRequest) error
	Search(ctx context.Context, prefix string) ([]types.UserItem, error)
	GetAccount(ctx context.Context, username string) (*models.User, error)
	UpdateAccount(ctx context.Context, username string, req *types.UpdateAccountRequest) error
	ChangePassword(ctx context.Context, username string, req *types.ChangePasswordRequest) error
}

type UserService struct {
	UsersRepo *dao.Users
}

// Signup 注册，所有字段一起校验，一次性返回全部错误
func (s *UserService) Signup(ctx context.Context, req *types.SignupRequest) error {
	errs, err := s.checkSignup(ctx, req)
	if err != nil {
		return err
	}
	if errs.HasError() {
		return response.NewValidationError(errs)
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hash,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		// 校验之后被并发注册抢占，重新检查一次给出具体字段
		errs, checkErr := s.checkSignup(ctx, req)
		if checkErr == nil && errs.HasError() {
			return response.NewValidationError(errs)
		}
		return ErrDuplicateAccount
	}
	return nil
}

func (s *UserService) checkSignup(ctx context.Context, req *types.SignupRequest) (types.SignupErrors, error) {
	var usernameExists, emailExists bool
	var err error

	if !utils.IsBlank(req.Username) {
		if usernameExists, err = s.UsersRepo.IsUsernameExist(ctx, req.Username); err != nil {
			return types.SignupErrors{}, err
		}
	}
	if !utils.IsBlank(req.Email) {
		if emailExists, err = s.UsersRepo.IsEmailExist(ctx, req.Email); err != nil {
			return types.SignupErrors{}, err
		}
	}

	usernameMsg := utils.Pick(usernameExists, "This username already exists")
	if utils.IsBlank(req.Username) {
		usernameMsg = "Username can't be blank"
	}
	emailMsg := utils.Pick(emailExists, "This email already exists")
	if utils.IsBlank(req.Email) {
		emailMsg = "Email can't be blank"
	}

	return types.SignupErrors{
		FirstName:       utils.Pick(utils.IsBlank(req.FirstName), "First Name can't be blank"),
		LastName:        utils.Pick(utils.IsBlank(req.LastName), "Last Name can't be blank"),
		Username:        usernameMsg,
		Email:           emailMsg,
		Password:        utils.Pick(utils.IsBlank(req.Password), "Password can't be blank"),
		ConfirmPassword: utils.Pick(!utils.IsEqual(req.Password, req.ConfirmPassword), "Re-entered password doesn't match password"),
	}, nil
}

// Login 登录校验，不区分用户不存在和密码错误
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) error {
	user, err := s.UsersRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadCredentials
		}
		return err
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return ErrBadCredentials
	}
	return nil
}

// Search 用户名前缀搜索，空串返回空列表
func (s *UserService) Search(ctx context.Context, prefix string) ([]types.UserItem, error) {
	items := make([]types.UserItem, 0)
	if utils.IsBlank(prefix) {
		return items, nil
	}

	names, err := s.UsersRepo.SearchByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		items = append(items, types.UserItem{Username: name})
	}
	return items, nil
}

func (s *UserService) GetAccount(ctx context.Context, username string) (*models.User, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateAccount 修改资料，邮箱不能是其他用户正在使用的
func (s *UserService) UpdateAccount(ctx context.Context, username string, req *types.UpdateAccountRequest) error {
	if _, err := s.GetAccount(ctx, username); err != nil {
		return err
	}

	emailTaken := false
	if !utils.IsBlank(req.Email) {
		taken, err := s.UsersRepo.IsEmailTakenByOther(ctx, req.Email, username)
		if err != nil {
			return err
		}
		emailTaken = taken
	}

	emailMsg := utils.Pick(emailTaken, "This Email is taken by another user")
	if utils.IsBlank(req.Email) {
		emailMsg = "Email can't be left blank"
	}
	errs := types.UpdateAccountErrors{
		FirstName: utils.Pick(utils.IsBlank(req.FirstName), "First Name can't be left blank"),
		LastName:  utils.Pick(utils.IsBlank(req.LastName), "Last Name can't be left blank"),
		Email:     emailMsg,
	}
	if errs.HasError() {
		return response.NewValidationError(errs)
	}

	if err := s.UsersRepo.UpdateProfile(ctx, username, req.FirstName, req.LastName, req.Email); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.NewValidationError(types.UpdateAccountErrors{Email: "This Email is taken by another user"})
		}
		return err
	}
	return nil
}

// ChangePassword 按顺序校验：当前密码 -> 新旧是否相同 -> 新密码非空 -> 两次输入一致
func (s *UserService) ChangePassword(ctx context.Context, username string, req *types.ChangePasswordRequest) error {
	user, err := s.GetAccount(ctx, username)
	if err != nil {
		return err
	}

	switch {
	case !encrypt.VerifyPassword(user.Password, req.CurrentPassword):
		return ErrIncorrectPassword
	case utils.IsEqual(req.NewPassword, req.CurrentPassword):
		return ErrSamePassword
	case utils.IsBlank(req.NewPassword):
		return ErrBlankPassword
	case !utils.IsEqual(req.ConfirmPassword, req.NewPassword):
		return ErrPasswordMismatch
	}

	hash, err := encrypt.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.UsersRepo.UpdatePassword(ctx, username, hash)
}
