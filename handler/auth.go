package handler

import (
	"Blog/pkg/context"
	"Blog/pkg/response"
	"Blog/service"
	"Blog/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	r.POST("/signup", context.Wrap(u.Signup)) // 注册
	r.POST("/login", context.Wrap(u.Login))   // 登录
}

func (u *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := u.UserService.Signup(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Created(c, "Registration successful")
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := u.UserService.Login(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Message(c, "User exists and login successful")
	return nil
}
