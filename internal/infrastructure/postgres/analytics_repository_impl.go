package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/internal/domain/repository"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) Get(platform entity.Platform) (*entity.PlatformAnalytics, bool, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT followers, engagement, extras, daily
		FROM platform_analytics
		WHERE platform = $1
	`, string(platform))

	a, err := scanAnalytics(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return a, true, nil
}

func (r *AnalyticsRepository) All() (map[entity.Platform]entity.PlatformAnalytics, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT platform, followers, engagement, extras, daily
		FROM platform_analytics
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[entity.Platform]entity.PlatformAnalytics{}
	for rows.Next() {
		var platform string
		var a entity.PlatformAnalytics
		var extras, dailyRaw []byte
		if err := rows.Scan(&platform, &a.Followers, &a.Engagement, &extras, &dailyRaw); err != nil {
			return nil, err
		}
		if err := decodeAnalytics(&a, extras, dailyRaw); err != nil {
			return nil, err
		}
		out[entity.Platform(platform)] = a
	}
	return out, rows.Err()
}

// Upsert replaces the snapshot for a platform. Used by the seeder; the
// API never writes analytics.
func (r *AnalyticsRepository) Upsert(platform entity.Platform, a entity.PlatformAnalytics) error {
	ctx := context.Background()
	extras, err := json.Marshal(a.Extras)
	if err != nil {
		return err
	}
	daily, err := json.Marshal(a.Daily)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO platform_analytics (platform, followers, engagement, extras, daily)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (platform) DO UPDATE
		SET followers = EXCLUDED.followers,
		    engagement = EXCLUDED.engagement,
		    extras = EXCLUDED.extras,
		    daily = EXCLUDED.daily,
		    updated_at = now()
	`, string(platform), a.Followers, a.Engagement, extras, daily)
	return err
}

func scanAnalytics(row pgx.Row) (*entity.PlatformAnalytics, error) {
	a := &entity.PlatformAnalytics{}
	var extras, dailyRaw []byte
	if err := row.Scan(&a.Followers, &a.Engagement, &extras, &dailyRaw); err != nil {
		return nil, err
	}
	if err := decodeAnalytics(a, extras, dailyRaw); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeAnalytics(a *entity.PlatformAnalytics, extras, daily []byte) error {
	if len(extras) > 0 {
		if err := json.Unmarshal(extras, &a.Extras); err != nil {
			return err
		}
	}
	if len(daily) > 0 {
		if err := json.Unmarshal(daily, &a.Daily); err != nil {
			return err
		}
	}
	return nil
}

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)
