package entity

import "time"

// PostStatus enumerates the post lifecycle. The composer always creates
// posts as StatusScheduled; the transition to published/failed belongs to
// an external dispatcher and is only ever set from outside this service.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
	StatusFailed    PostStatus = "failed"
)

// Post is a piece of content scheduled for one or more platforms.
// Scheduled is timezone-naive wall-clock time; Image is an optional URL.
type Post struct {
	ID        string
	UserID    string
	Content   string
	Platforms []Platform
	Scheduled time.Time
	Status    PostStatus
	Image     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
