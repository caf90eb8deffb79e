package entity

import "time"

// AccountStats carries the numbers pulled from a platform profile after
// an OAuth connect completes. Followers stays zero until the platform
// exposes it (Instagram basic display does not).
type AccountStats struct {
	Followers  int `json:"followers"`
	MediaCount int `json:"media_count"`
	TotalLikes int `json:"total_likes"`
}

// SocialAccount links a user to one platform. At most one account
// exists per (user, platform) pair; disconnecting only clears the
// Connected flag, the row is never deleted.
type SocialAccount struct {
	ID        string
	UserID    string
	Platform  Platform
	Handle    string
	Connected bool
	Stats     *AccountStats
	CreatedAt time.Time
	UpdatedAt time.Time
}
