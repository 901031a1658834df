// internal/models/helpers.go
package models

import (
	"fmt"
	"time"
)

// WeekStartDate returns the Monday starting the given week number, counted
// from the Monday of the week containing the season start date.
func WeekStartDate(seasonStart time.Time, weekNumber int) time.Time {
	offset := int(seasonStart.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := seasonStart.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (weekNumber-1)*7)
}

// TotalTrainingDuration sums the duration of the given items, in minutes.
// Items without a duration contribute nothing.
func TotalTrainingDuration(items []TrainingItem) int {
	total := 0
	for _, item := range items {
		total += item.Duration
	}
	return total
}

// FormatDuration renders minutes as a Chinese duration label, e.g. "1小時30分鐘".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%d小時%d分鐘", hours, mins)
		}
		return fmt.Sprintf("%d小時", hours)
	}
	return fmt.Sprintf("%d分鐘", mins)
}

// FormatDistance renders kilometers as "N公里", falling back to meters below 1km.
func FormatDistance(km float64) string {
	if km >= 1 {
		return trimFloat(km) + "公里"
	}
	return trimFloat(km*1000) + "公尺"
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// Validate reports whether the season carries the fields every persisted
// season must have. Used when checking season documents before import.
func (s *Season) Validate() bool {
	return s != nil &&
		s.ID != "" &&
		s.Name != "" &&
		!s.StartDate.IsZero() &&
		s.TotalWeeks >= 1 &&
		s.Weeks != nil
}
