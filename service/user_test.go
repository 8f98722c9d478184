package service

import (
	"context"
	"testing"

	"Blog/pkg/encrypt"
	"Blog/pkg/response"
	"Blog/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup(username string) *types.SignupRequest {
	return &types.SignupRequest{
		FirstName:       "First",
		LastName:        "Last",
		Username:        username,
		Email:           username + "@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()
	s := newUserService(newTestDB(t))

	require.NoError(t, s.Signup(ctx, validSignup("alice")))

	user, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, encrypt.VerifyPassword(user.Password, "secret"))

	// 用户名和邮箱都重复
	err = s.Signup(ctx, validSignup("alice"))
	var ve *response.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, types.SignupErrors{
		Username: "This username already exists",
		Email:    "This email already exists",
	}, ve.Fields)
}

func TestUserService_SignupAllBlank(t *testing.T) {
	s := newUserService(newTestDB(t))

	err := s.Signup(context.Background(), &types.SignupRequest{ConfirmPassword: "x"})
	var ve *response.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, types.SignupErrors{
		FirstName:       "First Name can't be blank",
		LastName:        "Last Name can't be blank",
		Username:        "Username can't be blank",
		Email:           "Email can't be blank",
		Password:        "Password can't be blank",
		ConfirmPassword: "Re-entered password doesn't match password",
	}, ve.Fields)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	s := newUserService(newTestDB(t))
	require.NoError(t, s.Signup(ctx, validSignup("alice")))

	assert.NoError(t, s.Login(ctx, &types.LoginRequest{Username: "alice", Password: "secret"}))
	assert.ErrorIs(t, s.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong"}), ErrBadCredentials)
	assert.ErrorIs(t, s.Login(ctx, &types.LoginRequest{Username: "ghost", Password: "secret"}), ErrBadCredentials)
}

func TestUserService_UpdateAccount(t *testing.T) {
	ctx := context.Background()
	s := newUserService(newTestDB(t))
	require.NoError(t, s.Signup(ctx, validSignup("alice")))
	require.NoError(t, s.Signup(ctx, validSignup("bob")))

	// 别人的邮箱
	err := s.UpdateAccount(ctx, "alice", &types.UpdateAccountRequest{FirstName: "A", LastName: "L", Email: "bob@example.com"})
	var ve *response.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, types.UpdateAccountErrors{Email: "This Email is taken by another user"}, ve.Fields)

	// 自己的邮箱可以重复提交
	require.NoError(t, s.UpdateAccount(ctx, "alice", &types.UpdateAccountRequest{FirstName: "A", LastName: "L", Email: "alice@example.com"}))
	user, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "A", user.FirstName)

	err = s.UpdateAccount(ctx, "alice", &types.UpdateAccountRequest{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, types.UpdateAccountErrors{
		FirstName: "First Name can't be left blank",
		LastName:  "Last Name can't be left blank",
		Email:     "Email can't be left blank",
	}, ve.Fields)

	err = s.UpdateAccount(ctx, "ghost", &types.UpdateAccountRequest{FirstName: "A", LastName: "L", Email: "g@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	s := newUserService(newTestDB(t))
	require.NoError(t, s.Signup(ctx, validSignup("alice")))

	cases := []struct {
		name string
		req  types.ChangePasswordRequest
		want error
	}{
		{"wrong current", types.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "n", ConfirmPassword: "n"}, ErrIncorrectPassword},
		{"same as current", types.ChangePasswordRequest{CurrentPassword: "secret", NewPassword: "secret", ConfirmPassword: "secret"}, ErrSamePassword},
		{"blank new", types.ChangePasswordRequest{CurrentPassword: "secret"}, ErrBlankPassword},
		{"mismatch", types.ChangePasswordRequest{CurrentPassword: "secret", NewPassword: "n1", ConfirmPassword: "n2"}, ErrPasswordMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, s.ChangePassword(ctx, "alice", &tc.req), tc.want)
		})
	}

	require.NoError(t, s.ChangePassword(ctx, "alice", &types.ChangePasswordRequest{
		CurrentPassword: "secret", NewPassword: "better", ConfirmPassword: "better",
	}))
	assert.NoError(t, s.Login(ctx, &types.LoginRequest{Username: "alice", Password: "better"}))
	assert.ErrorIs(t, s.ChangePassword(ctx, "ghost", &types.ChangePasswordRequest{}), ErrUserNotFound)
}

func TestUserService_Search(t *testing.T) {
	ctx := context.Background()
	s := newUserService(newTestDB(t))
	require.NoError(t, s.Signup(ctx, validSignup("carol")))
	require.NoError(t, s.Signup(ctx, validSignup("carl")))

	items, err := s.Search(ctx, "car")
	require.NoError(t, err)
	assert.Equal(t, []types.UserItem{{Username: "carl"}, {Username: "carol"}}, items)

	items, err = s.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}
