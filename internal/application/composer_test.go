package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/domain/entity"
)

func TestDraftValidateAccumulatesErrors(t *testing.T) {
	d := Draft{
		ScheduledDate: "2025-06-01",
		ScheduledTime: "14:30",
	}
	errs := d.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "content", errs[0].Field)
	assert.Equal(t, "Post content is required", errs[0].Message)
	assert.Equal(t, "platforms", errs[1].Field)
	assert.Equal(t, "At least one platform must be selected", errs[1].Message)
}

func TestDraftValidateEmpty(t *testing.T) {
	errs := Draft{}.Validate()
	require.Len(t, errs, 4)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"content", "platforms", "date", "time"}, fields)
}

func TestDraftValidateMalformedSchedule(t *testing.T) {
	d := Draft{
		Content:       "hello",
		Platforms:     []entity.Platform{entity.PlatformTwitter},
		ScheduledDate: "01/06/2025",
		ScheduledTime: "2pm",
	}
	errs := d.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "date", errs[0].Field)
	assert.Equal(t, "time", errs[1].Field)
}

func TestDraftValidateWhitespaceContent(t *testing.T) {
	d := Draft{
		Content:       "   \n\t",
		Platforms:     []entity.Platform{entity.PlatformTwitter},
		ScheduledDate: "2025-06-01",
		ScheduledTime: "14:30",
	}
	errs := d.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "content", errs[0].Field)
}

func TestDraftValidateOK(t *testing.T) {
	d := Draft{
		Content:       "hello world",
		Platforms:     []entity.Platform{entity.PlatformTwitter},
		ScheduledDate: "2025-06-01",
		ScheduledTime: "14:30",
	}
	assert.Empty(t, d.Validate())
}

func TestDraftSchedule(t *testing.T) {
	d := Draft{ScheduledDate: "2025-06-01", ScheduledTime: "14:30"}
	got, err := d.Schedule()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 1, 14, 30, 0, 0, time.Local), got)
}

func TestDraftMaxContentLength(t *testing.T) {
	tests := []struct {
		name      string
		platforms []entity.Platform
		want      int
	}{
		{"none selected", nil, 5000},
		{"twitter alone", []entity.Platform{entity.PlatformTwitter}, 280},
		{"instagram alone", []entity.Platform{entity.PlatformInstagram}, 2200},
		{"linkedin alone", []entity.Platform{entity.PlatformLinkedIn}, 3000},
		{"facebook alone", []entity.Platform{entity.PlatformFacebook}, 5000},
		{"tightest wins", []entity.Platform{entity.PlatformFacebook, entity.PlatformTwitter}, 280},
		{"instagram and linkedin", []entity.Platform{entity.PlatformLinkedIn, entity.PlatformInstagram}, 2200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Platforms: tt.platforms}
			assert.Equal(t, tt.want, d.MaxContentLength())
		})
	}
}
