package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/container"
	handlers "github.com/postpilot/postpilot/internal/interface/http"
	"github.com/postpilot/postpilot/internal/interface/middleware"
	"github.com/postpilot/postpilot/pkg/helpers"
)

// SuggestionModule proxies to the external suggestion generator, so it
// gets a strict per-user limit.

type SuggestionModule struct {
	Handler *handlers.SuggestionHandler
	JWT     *helpers.JWTManager
}

func NewSuggestionModule(h *handlers.SuggestionHandler, jwt *helpers.JWTManager) *SuggestionModule {
	return &SuggestionModule{Handler: h, JWT: jwt}
}

func (m *SuggestionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/suggestions", m.Handler.Suggest)
	}
}
