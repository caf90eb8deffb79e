package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/container"
	handlers "github.com/postpilot/postpilot/internal/interface/http"
	"github.com/postpilot/postpilot/internal/interface/middleware"
	"github.com/postpilot/postpilot/pkg/helpers"
)

// PostModule registers the post and calendar routes. Image uploads get
// a tighter per-user limit since each request hits object storage.

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/posts", m.Handler.List)
		auth.POST("/posts", m.Handler.Create)
		auth.GET("/posts/search", m.Handler.Search)
		auth.POST("/posts/image", uploadLimiter, m.Handler.UploadImage)
		auth.GET("/calendar", m.Handler.Calendar)
	}
}
