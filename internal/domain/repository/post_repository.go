package repository

import "github.com/postpilot/postpilot/internal/domain/entity"

// PostRepository stores scheduled posts. ListByUser returns posts in
// insertion order; consumers that need date order sort on their side.
// There is no update or delete.
type PostRepository interface {
	Create(p *entity.Post) error
	ListByUser(userID string) ([]entity.Post, error)
}
