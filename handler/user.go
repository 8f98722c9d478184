package handler

import (
	"Blog/pkg/context"
	"Blog/pkg/response"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	r.POST("/Users", context.Wrap(u.Search))
	r.GET("/Account/:username", context.Wrap(u.GetAccount))
	r.POST("/UpdateAccount/:username", context.Wrap(u.UpdateAccount))
	r.POST("/ChangePassword/:username", context.Wrap(u.ChangePassword))
}

// Search 按用户名前缀搜索
func (u *User) Search(c *gin.Context) error {
	var req types.SearchUsersRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	items, err := u.UserService.Search(c.Request.Context(), req.SearchVal)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (u *User) GetAccount(c *gin.Context) error {
	user, err := u.UserService.GetAccount(c.Request.Context(), c.Param("username"))
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) UpdateAccount(c *gin.Context) error {
	var req types.UpdateAccountRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := u.UserService.UpdateAccount(c.Request.Context(), c.Param("username"), &req); err != nil {
		return err
	}
	response.Message(c, "Account Details updated successfully")
	return nil
}

func (u *User) ChangePassword(c *gin.Context) error {
	var req types.ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := u.UserService.ChangePassword(c.Request.Context(), c.Param("username"), &req); err != nil {
		return err
	}
	response.Message(c, "Password updated successfully")
	return nil
}
