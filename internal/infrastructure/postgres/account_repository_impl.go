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

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) ListByUser(userID string) ([]entity.SocialAccount, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, platform, handle, connected, stats, created_at, updated_at
		FROM social_accounts
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.SocialAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *AccountRepository) GetByUserAndPlatform(userID string, platform entity.Platform) (*entity.SocialAccount, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, platform, handle, connected, stats, created_at, updated_at
		FROM social_accounts
		WHERE user_id = $1 AND platform = $2
	`, userID, string(platform))

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepository) Upsert(a *entity.SocialAccount) error {
	ctx := context.Background()
	var stats []byte
	if a.Stats != nil {
		b, err := json.Marshal(a.Stats)
		if err != nil {
			return err
		}
		stats = b
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO social_accounts (user_id, platform, handle, connected, stats)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, platform) DO UPDATE
		SET handle = EXCLUDED.handle,
		    connected = EXCLUDED.connected,
		    stats = COALESCE(EXCLUDED.stats, social_accounts.stats),
		    updated_at = now()
		RETURNING id, created_at, updated_at
	`, a.UserID, string(a.Platform), a.Handle, a.Connected, stats)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func scanAccount(row pgx.Row) (*entity.SocialAccount, error) {
	a := &entity.SocialAccount{}
	var platform string
	var stats []byte
	if err := row.Scan(&a.ID, &a.UserID, &platform, &a.Handle, &a.Connected, &stats, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Platform = entity.Platform(platform)
	if len(stats) > 0 {
		a.Stats = &entity.AccountStats{}
		if err := json.Unmarshal(stats, a.Stats); err != nil {
			return nil, err
		}
	}
	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
