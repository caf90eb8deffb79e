package application

import (
	"strings"
	"time"

	"github.com/postpilot/postpilot/internal/domain/entity"
)

// Draft is an in-progress post as entered in the composer: the schedule
// is still split into a date part and a time-of-day part.
type Draft struct {
	Content       string
	Platforms     []entity.Platform
	ScheduledDate string // 2006-01-02
	ScheduledTime string // 15:04
	Image         string
}

// FieldError points a validation message at one composer field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	draftDateLayout = "2006-01-02"
	draftTimeLayout = "15:04"
)

// Validate checks every rule independently and returns all failures at
// once; the composer shows them next to their fields. An empty result
// means the draft can be submitted.
func (d Draft) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.Content) == "" {
		errs = append(errs, FieldError{Field: "content", Message: "Post content is required"})
	}
	if len(d.Platforms) == 0 {
		errs = append(errs, FieldError{Field: "platforms", Message: "At least one platform must be selected"})
	}
	if d.ScheduledDate == "" {
		errs = append(errs, FieldError{Field: "date", Message: "Scheduled date is required"})
	} else if _, err := time.ParseInLocation(draftDateLayout, d.ScheduledDate, time.Local); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "Scheduled date must be YYYY-MM-DD"})
	}
	if d.ScheduledTime == "" {
		errs = append(errs, FieldError{Field: "time", Message: "Scheduled time is required"})
	} else if _, err := time.Parse(draftTimeLayout, d.ScheduledTime); err != nil {
		errs = append(errs, FieldError{Field: "time", Message: "Scheduled time must be HH:MM"})
	}
	return errs
}

// MaxContentLength is the advisory limit for the current selection: the
// minimum of the selected platforms' limits. It is enforced by the input
// layer; changing the selection does not re-validate content already
// typed past the new minimum.
func (d Draft) MaxContentLength() int {
	return entity.MinPostLength(d.Platforms)
}

// Schedule combines the date and time parts into one instant. Seconds
// are always zero. Call only after Validate has passed.
func (d Draft) Schedule() (time.Time, error) {
	day, err := time.ParseInLocation(draftDateLayout, d.ScheduledDate, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := time.Parse(draftTimeLayout, d.ScheduledTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.Local), nil
}
