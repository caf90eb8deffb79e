package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/domain/entity"
)

func post(id string, scheduled time.Time) entity.Post {
	return entity.Post{
		ID:        id,
		UserID:    "1",
		Content:   "post " + id,
		Platforms: []entity.Platform{entity.PlatformTwitter},
		Scheduled: scheduled,
		Status:    entity.StatusScheduled,
	}
}

func TestMaterializeCalendarMay2025(t *testing.T) {
	// May 1st 2025 is a Thursday: four leading offset cells.
	posts := []entity.Post{
		post("1", time.Date(2025, time.May, 15, 10, 0, 0, 0, time.Local)),
	}
	now := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.Local)

	cells := MaterializeCalendar(2025, time.May, posts, now)
	require.Len(t, cells, 4+31)

	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, cells[i].Day)
		assert.Empty(t, cells[i].Posts)
	}
	assert.Equal(t, 1, cells[4].Day)
	assert.Equal(t, 31, cells[len(cells)-1].Day)

	day15 := cells[4+14]
	require.Equal(t, 15, day15.Day)
	require.Len(t, day15.Posts, 1)
	assert.Equal(t, "1", day15.Posts[0].ID)
}

func TestMaterializeCalendarLeapFebruary(t *testing.T) {
	now := time.Now()

	cells := MaterializeCalendar(2024, time.February, nil, now)
	// Feb 1st 2024 is a Thursday; leap year has 29 days.
	require.Len(t, cells, 4+29)
	assert.Equal(t, 29, cells[len(cells)-1].Day)

	cells = MaterializeCalendar(2025, time.February, nil, now)
	// Feb 1st 2025 is a Saturday.
	require.Len(t, cells, 6+28)
	assert.Equal(t, 28, cells[len(cells)-1].Day)
}

func TestMaterializeCalendarTodayFlag(t *testing.T) {
	now := time.Date(2025, time.May, 15, 23, 59, 0, 0, time.Local)
	cells := MaterializeCalendar(2025, time.May, nil, now)

	for _, cell := range cells {
		assert.Equal(t, cell.Day == 15, cell.Today, "day %d", cell.Day)
	}

	// Different month: nothing is today.
	cells = MaterializeCalendar(2025, time.June, nil, now)
	for _, cell := range cells {
		assert.False(t, cell.Today)
	}
}

func TestMaterializeCalendarSameDayKeepsOrder(t *testing.T) {
	day := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.Local)
	posts := []entity.Post{
		post("1", day.Add(18*time.Hour)),
		post("2", day.Add(9*time.Hour)),
		post("3", day.Add(12*time.Hour)),
	}
	now := time.Now()

	cells := MaterializeCalendar(2025, time.May, posts, now)
	var got []string
	for _, cell := range cells {
		if cell.Day == 20 {
			for _, p := range cell.Posts {
				got = append(got, p.ID)
			}
		}
	}
	// Arrival order wins over time of day.
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestMaterializeCalendarFiltersOtherMonths(t *testing.T) {
	posts := []entity.Post{
		post("1", time.Date(2025, time.April, 30, 10, 0, 0, 0, time.Local)),
		post("2", time.Date(2025, time.May, 1, 10, 0, 0, 0, time.Local)),
		post("3", time.Date(2024, time.May, 1, 10, 0, 0, 0, time.Local)),
	}
	cells := MaterializeCalendar(2025, time.May, posts, time.Now())

	total := 0
	for _, cell := range cells {
		total += len(cell.Posts)
	}
	assert.Equal(t, 1, total)
	require.NotEmpty(t, cells[4].Posts)
	assert.Equal(t, "2", cells[4].Posts[0].ID)
}

func TestMaterializeCalendarEmptyCellsNeverNil(t *testing.T) {
	cells := MaterializeCalendar(2025, time.May, nil, time.Now())
	for _, cell := range cells {
		assert.NotNil(t, cell.Posts)
	}
}
