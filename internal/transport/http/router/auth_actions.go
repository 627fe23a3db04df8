package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"starhaven/internal/domain"
	httpez "starhaven/internal/transport/http/ez"
)

func mountAuthActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	httpez.RegisterAction[registerIn, *domain.User](ez, httpez.Action[registerIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (*domain.User, error) {
			u := domain.User{
				Name:   strings.TrimSpace(in.Name),
				Email:  strings.TrimSpace(in.Email),
				Role:   domain.RoleMember,
				Status: domain.UserStatusActive,
			}
			return d.User.CreateUser(u, in.Password)
		},
	})

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ez, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			u, err := d.User.AuthenticateUser(strings.TrimSpace(in.Email), in.Password)
			if err != nil {
				return loginOut{}, err
			}
			if u == nil {
				return loginOut{}, httpez.Unauthorized("invalid credentials")
			}
			tok, err := d.JWT.Issue(u.ID, u.Role)
			if err != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})
}

func mountMeAction(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := d.User.GetUserByID(c.GetString("userId"))
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			return u, nil
		},
	})
}
