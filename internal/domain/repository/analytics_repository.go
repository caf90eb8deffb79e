package repository

import "github.com/postpilot/postpilot/internal/domain/entity"

// AnalyticsRepository is a read-only accessor over recorded platform
// snapshots. Get reports absence through the bool, never an error.
type AnalyticsRepository interface {
	Get(platform entity.Platform) (*entity.PlatformAnalytics, bool, error)
	All() (map[entity.Platform]entity.PlatformAnalytics, error)
}
