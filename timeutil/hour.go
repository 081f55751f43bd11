package timeutil

import (
	"time"

	"weather-dashboard/models"
)

// RoundToHour rounds t to the nearest hour boundary in t's own location.
// Minutes 0-29 round down, 30-59 round up; seconds and sub-seconds are dropped.
func RoundToHour(t time.Time) time.Time {
	start := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if t.Minute() >= 30 {
		return start.Add(time.Hour)
	}
	return start
}

// CurrentHour returns now rounded to the nearest hour in loc, formatted to minute
// precision without an offset (e.g. "2024-03-01T14:00"). A nil loc means UTC.
func CurrentHour(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return RoundToHour(now.In(loc)).Format(models.TimeLayout)
}
