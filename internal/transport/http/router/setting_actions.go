package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starhaven/internal/domain"
	httpez "starhaven/internal/transport/http/ez"
)

func mountAdminSettingActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)

	httpez.RegisterAction[struct{}, []domain.Setting](ez, httpez.Action[struct{}, []domain.Setting]{
		Method: http.MethodGet,
		Path:   "/settings",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Setting, error) {
			return d.Settings.GetAllSettings()
		},
	})

	httpez.RegisterAction[struct{}, *domain.Setting](ez, httpez.Action[struct{}, *domain.Setting]{
		Method: http.MethodGet,
		Path:   "/settings/:key",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Setting, error) {
			s, err := d.Settings.GetSettingByKey(c.Param("key"))
			if err != nil {
				return nil, err
			}
			if s == nil {
				return nil, httpez.NotFound("setting not found")
			}
			return s, nil
		},
	})

	type upsertIn struct {
		Value       domain.JSON `json:"value"`
		Description string      `json:"description"`
	}
	httpez.RegisterAction[upsertIn, *domain.Setting](ez, httpez.Action[upsertIn, *domain.Setting]{
		Method: http.MethodPut,
		Path:   "/settings/:key",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, in *upsertIn) (*domain.Setting, error) {
			return d.Settings.CreateOrUpdateSetting(c.Param("key"), in.Value, in.Description)
		},
	})

	httpez.RegisterAction[struct{}, *domain.Setting](ez, httpez.Action[struct{}, *domain.Setting]{
		Method: http.MethodDelete,
		Path:   "/settings/:key",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Setting, error) {
			s, err := d.Settings.DeleteSetting(c.Param("key"))
			if err != nil {
				return nil, err
			}
			if s == nil {
				return nil, httpez.NotFound("setting not found")
			}
			return s, nil
		},
	})
}
