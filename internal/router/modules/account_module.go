package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/container"
	handlers "github.com/postpilot/postpilot/internal/interface/http"
	"github.com/postpilot/postpilot/internal/interface/middleware"
	"github.com/postpilot/postpilot/pkg/helpers"
)

// AccountModule registers the social account routes. The static
// /accounts/instagram/connect route takes priority over the
// :platform wildcard, so Instagram connects always go through the
// OAuth code exchange.

type AccountModule struct {
	Handler *handlers.AccountHandler
	JWT     *helpers.JWTManager
}

func NewAccountModule(h *handlers.AccountHandler, jwt *helpers.JWTManager) *AccountModule {
	return &AccountModule{Handler: h, JWT: jwt}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/accounts", m.Handler.List)
		auth.POST("/accounts/instagram/connect", m.Handler.ConnectInstagram)
		auth.POST("/accounts/:platform/connect", m.Handler.Connect)
		auth.POST("/accounts/:platform/disconnect", m.Handler.Disconnect)
	}
}
