package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"starhaven/internal/core/server"
	"starhaven/internal/domain"
	mdw "starhaven/internal/transport/http/middleware"
)

// NewAdminEngine builds the back-office engine; every /admin/v1 route
// requires the admin role.
func NewAdminEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := server.NewEngine(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(d.JWT, domain.RoleAdmin))

	MountAllAdmin(admin)

	mountAdminUserActions(admin, d)
	mountAdminSettingActions(admin, d)
	mountAdminBookingActions(admin, d)
	mountAdminAvailabilityActions(admin, d)

	return r
}
