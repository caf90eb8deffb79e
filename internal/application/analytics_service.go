package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/internal/domain/entity"
	repo "github.com/postpilot/postpilot/internal/domain/repository"
	"github.com/postpilot/postpilot/pkg/helpers"
)

const analyticsCacheKey = "analytics:all"
const analyticsCacheTTL = 5 * time.Minute

// AnalyticsService reads recorded snapshots. The full per-platform map
// is cached in Redis for a short window since it is the dashboard's
// hottest read and the data only changes on ingestion (out of scope).
type AnalyticsService struct {
	Repo   repo.AnalyticsRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAnalyticsService(r repo.AnalyticsRepository, rdb *redis.Client, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{Repo: r, Redis: rdb, Logger: logger}
}

// Get returns the snapshot for one platform. A platform without data is
// absent, not an error.
func (s *AnalyticsService) Get(platform entity.Platform) (*entity.PlatformAnalytics, bool, error) {
	return s.Repo.Get(platform)
}

// All returns the full per-platform map, served from cache when fresh.
func (s *AnalyticsService) All(ctx context.Context) (map[entity.Platform]entity.PlatformAnalytics, error) {
	if s.Redis != nil {
		var cached map[entity.Platform]entity.PlatformAnalytics
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, analyticsCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	all, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, analyticsCacheKey, all, analyticsCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("analytics cache write failed")
		}
	}
	return all, nil
}
