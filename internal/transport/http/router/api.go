package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"starhaven/internal/controller"
	"starhaven/internal/core/auth"
	"starhaven/internal/core/cache"
	"starhaven/internal/core/server"
	mdw "starhaven/internal/transport/http/middleware"
)

// Deps carries the explicitly constructed controllers and collaborators
// every engine mounts over; no package-level singletons.
type Deps struct {
	Settings *controller.Settings
	Booking  *controller.Booking
	User     *controller.User
	JWT      *auth.JWTer
	Cache    *cache.Cache
	AvailTTL time.Duration
}

// NewAPIEngine builds the member-facing engine.
func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
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

	api := r.Group("/api/v1")

	MountAllAPI(api)

	// public: login/register plus the cached availability reads
	mountAuthActions(api, d)
	mountAvailabilityReadActions(api, d)

	// authenticated member surface
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWT, ""))
	mountMeAction(authed, d)
	mountBookingActions(authed, d)
	mountAvailabilityWriteActions(authed, d)

	return r
}
