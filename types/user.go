package types

// SignupRequest 注册
type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignupErrors 注册字段错误，没有错误的字段为空串
type SignupErrors struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (e SignupErrors) HasError() bool {
	return e != SignupErrors{}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SearchUsersRequest struct {
	SearchVal string `json:"searchVal"`
}

type UserItem struct {
	Username string `json:"username"`
}

// UpdateAccountRequest 修改资料，用户名在路径里
type UpdateAccountRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type UpdateAccountErrors struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (e UpdateAccountErrors) HasError() bool {
	return e != UpdateAccountErrors{}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
