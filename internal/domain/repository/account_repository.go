package repository

import "github.com/postpilot/postpilot/internal/domain/entity"

// AccountRepository stores social platform connections. Upsert keeps the
// (user, platform) pair unique; rows are never deleted, disconnect only
// flips the Connected flag.
type AccountRepository interface {
	ListByUser(userID string) ([]entity.SocialAccount, error)
	GetByUserAndPlatform(userID string, platform entity.Platform) (*entity.SocialAccount, error)
	Upsert(a *entity.SocialAccount) error
}
