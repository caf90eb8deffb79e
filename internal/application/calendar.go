package application

import (
	"time"

	"github.com/postpilot/postpilot/internal/domain/entity"
)

// CalendarCell is one slot in the month grid. Leading offset cells have
// Day == 0 and carry no posts. The grid is ragged: no trailing empties
// are emitted after the last day of the month.
type CalendarCell struct {
	Day   int           `json:"day"`
	Today bool          `json:"today"`
	Posts []entity.Post `json:"posts"`
}

// MaterializeCalendar builds the day-indexed grid for one month.
// The first cells are empty padding so day 1 lands on its weekday in a
// Sunday-first week. Posts are bucketed by the calendar date of their
// scheduled instant, keeping the order they arrive in within each day.
// now decides which cell is flagged as today; callers pass time.Now()
// so the flag is recomputed on every request.
func MaterializeCalendar(year int, month time.Month, posts []entity.Post, now time.Time) []CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// last day of month: day 0 of the next month
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	offset := int(first.Weekday()) // Sunday == 0
	cells := make([]CalendarCell, 0, offset+lastDay)
	for i := 0; i < offset; i++ {
		cells = append(cells, CalendarCell{Posts: []entity.Post{}})
	}

	byDay := make(map[int][]entity.Post)
	for _, p := range posts {
		if p.Scheduled.Year() == year && p.Scheduled.Month() == month {
			d := p.Scheduled.Day()
			byDay[d] = append(byDay[d], p)
		}
	}

	ny, nm, nd := now.Date()
	for day := 1; day <= lastDay; day++ {
		dayPosts := byDay[day]
		if dayPosts == nil {
			dayPosts = []entity.Post{}
		}
		cells = append(cells, CalendarCell{
			Day:   day,
			Today: ny == year && nm == month && nd == day,
			Posts: dayPosts,
		})
	}
	return cells
}
