package handlers

import (
	"time"

	"github.com/postpilot/postpilot/internal/application"
	"github.com/postpilot/postpilot/internal/domain/entity"
)

// Wire shapes match what the dashboard client already consumes from the
// mock API (camelCase userId, null image).

type postView struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Content   string            `json:"content"`
	Platforms []entity.Platform `json:"platforms"`
	Scheduled time.Time         `json:"scheduled"`
	Status    entity.PostStatus `json:"status"`
	Image     *string           `json:"image"`
}

func viewPost(p entity.Post) postView {
	return postView{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		Platforms: p.Platforms,
		Scheduled: p.Scheduled,
		Status:    p.Status,
		Image:     p.Image,
	}
}

func viewPosts(ps []entity.Post) []postView {
	out := make([]postView, 0, len(ps))
	for _, p := range ps {
		out = append(out, viewPost(p))
	}
	return out
}

type accountView struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	Platform  entity.Platform      `json:"platform"`
	Handle    string               `json:"handle"`
	Connected bool                 `json:"connected"`
	Stats     *entity.AccountStats `json:"stats,omitempty"`
}

func viewAccount(a entity.SocialAccount) accountView {
	return accountView{
		ID:        a.ID,
		UserID:    a.UserID,
		Platform:  a.Platform,
		Handle:    a.Handle,
		Connected: a.Connected,
		Stats:     a.Stats,
	}
}

func viewAccounts(as []entity.SocialAccount) []accountView {
	out := make([]accountView, 0, len(as))
	for _, a := range as {
		out = append(out, viewAccount(a))
	}
	return out
}

type calendarCellView struct {
	Day   int        `json:"day"`
	Today bool       `json:"today"`
	Posts []postView `json:"posts"`
}

func viewCalendar(cells []application.CalendarCell) []calendarCellView {
	out := make([]calendarCellView, 0, len(cells))
	for _, cell := range cells {
		out = append(out, calendarCellView{
			Day:   cell.Day,
			Today: cell.Today,
			Posts: viewPosts(cell.Posts),
		})
	}
	return out
}
