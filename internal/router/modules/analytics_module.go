package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/container"
	handlers "github.com/postpilot/postpilot/internal/interface/http"
	"github.com/postpilot/postpilot/internal/interface/middleware"
	"github.com/postpilot/postpilot/pkg/helpers"
)

type AnalyticsModule struct {
	Handler *handlers.AnalyticsHandler
	JWT     *helpers.JWTManager
}

func NewAnalyticsModule(h *handlers.AnalyticsHandler, jwt *helpers.JWTManager) *AnalyticsModule {
	return &AnalyticsModule{Handler: h, JWT: jwt}
}

func (m *AnalyticsModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/analytics", m.Handler.All)
		auth.GET("/analytics/:platform", m.Handler.Get)
	}
}
