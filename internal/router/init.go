package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/application"
	"github.com/postpilot/postpilot/internal/container"
	"github.com/postpilot/postpilot/internal/domain/repository"
	pginfra "github.com/postpilot/postpilot/internal/infrastructure/postgres"
	handlers "github.com/postpilot/postpilot/internal/interface/http"
	"github.com/postpilot/postpilot/internal/router/modules"
	"github.com/postpilot/postpilot/pkg/response"
)

// repos bundles the storage implementations picked by STORAGE_DRIVER.
type repos struct {
	Users     repository.UserRepository
	Accounts  repository.AccountRepository
	Posts     repository.PostRepository
	Analytics repository.AnalyticsRepository
}

func buildRepos() repos {
	if container.GetConfig().StorageDriver == "memory" {
		s := container.GetMemStore()
		return repos{
			Users:     s.Users(),
			Accounts:  s.Accounts(),
			Posts:     s.Posts(),
			Analytics: s.Analytics(),
		}
	}
	pool := container.GetPGPool()
	return repos{
		Users:     pginfra.NewUserRepository(pool),
		Accounts:  pginfra.NewAccountRepository(pool),
		Posts:     pginfra.NewPostRepository(pool),
		Analytics: pginfra.NewAnalyticsRepository(pool),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	st := buildRepos()

	userSvc := application.NewUserService(st.Users, jwt, container.GetRedis(), logger)
	accountSvc := application.NewAccountService(st.Accounts, container.GetInstagram(), logger)
	postSvc := application.NewPostService(st.Posts, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESPostsIndex, logger)
	analyticsSvc := application.NewAnalyticsService(st.Analytics, container.GetRedis(), logger)

	userHandler := handlers.NewUserHandler(userSvc, jwt, logger, cfg.CookieDomain, cfg.CookieSecure)
	authHandler := handlers.NewAuthHandler(st.Users, container.GetRedis(), logger, cfg, container.GetRabbitPub(), container.GetPGPool())
	accountHandler := handlers.NewAccountHandler(accountSvc, logger)
	postHandler := handlers.NewPostHandler(postSvc, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc, logger)
	suggestionHandler := handlers.NewSuggestionHandler(container.GetSuggest(), logger)

	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewAccountModule(accountHandler, jwt))
	r.Add(modules.NewPostModule(postHandler, jwt))
	r.Add(modules.NewAnalyticsModule(analyticsHandler, jwt))
	r.Add(modules.NewSuggestionModule(suggestionHandler, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}

	r.Engine.NoRoute(func(c *gin.Context) {
		response.Error[any](c, http.StatusNotFound, "route not found", nil)
	})
}
