package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	platforms := make([]string, len(p.Platforms))
	for i, pl := range p.Platforms {
		platforms[i] = string(pl)
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, content, platforms, scheduled, status, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Content, platforms, p.Scheduled, string(p.Status), p.Image)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) ListByUser(userID string) ([]entity.Post, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, content, platforms, scheduled, status, image, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY seq
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Post
	for rows.Next() {
		var p entity.Post
		var platforms []string
		var status string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &platforms, &p.Scheduled, &status, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Platforms = make([]entity.Platform, len(platforms))
		for i, pl := range platforms {
			p.Platforms[i] = entity.Platform(pl)
		}
		p.Status = entity.PostStatus(status)
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
