package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	corecache "starhaven/internal/core/cache"
	"starhaven/internal/domain"
	httpez "starhaven/internal/transport/http/ez"
)

func availabilityCacheKey(typ string) string { return "availability:" + typ }

// Public reads. The per-type lists are hot on the booking pages, so
// they go through the redis read-through cache.
func mountAvailabilityReadActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	loadCached := func(ctx context.Context, typ string, load func() ([]domain.Availability, error)) ([]domain.Availability, error) {
		if d.Cache == nil {
			return load()
		}
		out, err := corecache.GetOrLoadJSON(d.Cache, ctx, availabilityCacheKey(typ), d.AvailTTL,
			func(context.Context) (*[]domain.Availability, error) {
				v, e := load()
				if e != nil {
					return nil, e
				}
				return &v, nil
			})
		if err != nil {
			return nil, err
		}
		if out == nil {
			return nil, nil
		}
		return *out, nil
	}

	type userQ struct {
		UserID string `form:"userId"`
	}
	httpez.RegisterAction[userQ, []domain.Availability](ez, httpez.Action[userQ, []domain.Availability]{
		Method: http.MethodGet,
		Path:   "/availability/:type",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *userQ) ([]domain.Availability, error) {
			typ := c.Param("type")
			if in.UserID != "" {
				return d.Settings.GetAvailability(typ, in.UserID)
			}
			return loadCached(c.Request.Context(), typ, func() ([]domain.Availability, error) {
				return d.Settings.GetAllAvailabilitiesByType(typ)
			})
		},
	})

	httpez.RegisterAction[struct{}, []domain.Availability](ez, httpez.Action[struct{}, []domain.Availability]{
		Method: http.MethodGet,
		Path:   "/obs/availability",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Availability, error) {
			return loadCached(c.Request.Context(), domain.AvailabilityObs, d.Settings.GetObsAvailability)
		},
	})

	httpez.RegisterAction[struct{}, []domain.Availability](ez, httpez.Action[struct{}, []domain.Availability]{
		Method: http.MethodGet,
		Path:   "/hosting/availability",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Availability, error) {
			return loadCached(c.Request.Context(), domain.AvailabilityHosting, d.Settings.GetHostingAvailability)
		},
	})
}

// Authenticated writes, scoped to the caller's own calendar.
func mountAvailabilityWriteActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	invalidate := func(c *gin.Context, typ string) {
		if d.Cache != nil {
			d.Cache.Invalidate(c.Request.Context(), availabilityCacheKey(typ))
		}
	}

	type datesIn struct {
		Dates []string `json:"dates"`
	}

	httpez.RegisterAction[datesIn, *domain.Availability](ez, httpez.Action[datesIn, *domain.Availability]{
		Method: http.MethodPut,
		Path:   "/availability/:type",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *datesIn) (*domain.Availability, error) {
			typ := c.Param("type")
			a, err := d.Settings.CreateOrUpdateAvailability(typ, c.GetString("userId"), in.Dates, c.GetString("role"))
			if err != nil {
				return nil, err
			}
			invalidate(c, typ)
			return a, nil
		},
	})

	httpez.RegisterAction[datesIn, *domain.Availability](ez, httpez.Action[datesIn, *domain.Availability]{
		Method: http.MethodPut,
		Path:   "/obs/availability",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *datesIn) (*domain.Availability, error) {
			a, err := d.Settings.UpdateObsAvailability(c.GetString("userId"), in.Dates, c.GetString("role"))
			if err != nil {
				return nil, err
			}
			invalidate(c, domain.AvailabilityObs)
			return a, nil
		},
	})

	httpez.RegisterAction[datesIn, *domain.Availability](ez, httpez.Action[datesIn, *domain.Availability]{
		Method: http.MethodPut,
		Path:   "/hosting/availability",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *datesIn) (*domain.Availability, error) {
			a, err := d.Settings.UpdateHostingAvailability(c.GetString("userId"), in.Dates, c.GetString("role"))
			if err != nil {
				return nil, err
			}
			invalidate(c, domain.AvailabilityHosting)
			return a, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Availability](ez, httpez.Action[struct{}, *domain.Availability]{
		Method: http.MethodDelete,
		Path:   "/availability/:type",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Availability, error) {
			typ := c.Param("type")
			a, err := d.Settings.DeleteAvailability(typ, c.GetString("userId"))
			if err != nil {
				return nil, err
			}
			invalidate(c, typ)
			return a, nil
		},
	})
}

func mountAdminAvailabilityActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)

	// facility-wide entries are written under the system user id
	type systemIn struct {
		Dates []string `json:"dates"`
	}
	httpez.RegisterAction[systemIn, *domain.Availability](ez, httpez.Action[systemIn, *domain.Availability]{
		Method: http.MethodPut,
		Path:   "/availability/:type/system",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, in *systemIn) (*domain.Availability, error) {
			typ := c.Param("type")
			a, err := d.Settings.CreateOrUpdateAvailability(typ, domain.SystemUserID, in.Dates, c.GetString("role"))
			if err != nil {
				return nil, err
			}
			if d.Cache != nil {
				d.Cache.Invalidate(c.Request.Context(), availabilityCacheKey(typ))
			}
			return a, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Availability](ez, httpez.Action[struct{}, *domain.Availability]{
		Method: http.MethodDelete,
		Path:   "/availability/:type/:userId",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Availability, error) {
			typ := c.Param("type")
			a, err := d.Settings.DeleteAvailability(typ, c.Param("userId"))
			if err != nil {
				return nil, err
			}
			if a == nil {
				return nil, httpez.NotFound("availability not found")
			}
			if d.Cache != nil {
				d.Cache.Invalidate(c.Request.Context(), availabilityCacheKey(typ))
			}
			return a, nil
		},
	})
}
