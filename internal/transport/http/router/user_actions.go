package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"starhaven/internal/domain"
	httpez "starhaven/internal/transport/http/ez"
)

func mountAdminUserActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)

	adminOnly := []string{domain.RoleAdmin}

	type listQ struct {
		Role string `form:"role"`
	}
	httpez.RegisterAction[listQ, []domain.User](ez, httpez.Action[listQ, []domain.User]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *listQ) ([]domain.User, error) {
			if in.Role != "" {
				return d.User.GetUsersByRole(in.Role)
			}
			return d.User.GetAllUsers()
		},
	})

	type createIn struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Status   string `json:"status"`
	}
	httpez.RegisterAction[createIn, *domain.User](ez, httpez.Action[createIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *createIn) (*domain.User, error) {
			role := in.Role
			if role == "" {
				role = domain.RoleMember
			}
			u := domain.User{
				Name:   strings.TrimSpace(in.Name),
				Email:  strings.TrimSpace(in.Email),
				Role:   role,
				Status: in.Status,
			}
			return d.User.CreateUser(u, in.Password)
		},
	})

	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := d.User.GetUserByID(c.Param("id"))
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			return u, nil
		},
	})

	httpez.RegisterAction[domain.UserPatch, *domain.User](ez, httpez.Action[domain.UserPatch, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *domain.UserPatch) (*domain.User, error) {
			u, err := d.User.UpdateUser(c.Param("id"), *in)
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			return u, nil
		},
	})

	type statusIn struct {
		Status string `json:"status" binding:"required"`
	}
	httpez.RegisterAction[statusIn, *domain.User](ez, httpez.Action[statusIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *statusIn) (*domain.User, error) {
			u, err := d.User.ChangeUserStatus(c.Param("id"), in.Status)
			if err != nil {
				return nil, err
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			return u, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.User](ez, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			u, err := d.User.DeleteUser(c.Param("id"))
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
