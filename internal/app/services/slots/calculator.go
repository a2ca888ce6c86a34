// Package slots computes the advisory 7-day booking window for a
// doctor. The same algorithm runs in the web client; the server-side
// conflict check at booking time stays the sole authority.
package slots

import (
	"clinic-service/internal/pkg/constvars"
	"fmt"
	"time"
)

// Day is one day of the window: its date key and the open time labels
// in chronological order. Times is empty when the whole day is booked
// or already past the closing hour.
type Day struct {
	DateKey string
	Times   []string
}

// DateKey formats t as "day_month_year" with a 1-based month and no
// zero padding.
func DateKey(t time.Time) string {
	return fmt.Sprintf(constvars.SlotDateKeyFormat, t.Day(), int(t.Month()), t.Year())
}

// TimeLabel formats t as "h:mm am|pm": 12-hour clock without padding
// on the hour, two-digit minutes, lowercase meridiem.
func TimeLabel(t time.Time) string {
	hour := t.Hour()
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, t.Minute(), meridiem)
}

// Generate produces the next SlotHorizonDays days of bookable
// half-hour slots between the opening and closing hours, excluding
// every (dateKey, timeLabel) pair present in booked. Day zero starts
// at now rounded up to the next half-hour boundary, never before the
// opening hour; later days start at the opening hour. The result is
// recomputed from scratch on every call.
func Generate(now time.Time, booked map[string][]string) []Day {
	days := make([]Day, 0, constvars.SlotHorizonDays)

	for offset := 0; offset < constvars.SlotHorizonDays; offset++ {
		dayDate := now.AddDate(0, 0, offset)
		start := time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(),
			constvars.SlotOpeningHour, 0, 0, 0, now.Location())
		end := time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(),
			constvars.SlotClosingHour, 0, 0, 0, now.Location())

		if offset == 0 {
			rounded := roundUpToBoundary(now)
			if rounded.After(start) {
				start = rounded
			}
		}

		dateKey := DateKey(dayDate)
		times := []string{}
		for cursor := start; cursor.Before(end); cursor = cursor.Add(constvars.SlotStepMinutes * time.Minute) {
			label := TimeLabel(cursor)
			if isBooked(booked, dateKey, label) {
				continue
			}
			times = append(times, label)
		}

		days = append(days, Day{DateKey: dateKey, Times: times})
	}

	return days
}

// roundUpToBoundary clamps t up to the next :00/:30 mark; instants
// already on a boundary stay where they are.
func roundUpToBoundary(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	switch {
	case t.Minute() == 0 || t.Minute() == 30:
		return t
	case t.Minute() < 30:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 30, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()).Add(time.Hour)
	}
}

func isBooked(booked map[string][]string, dateKey, label string) bool {
	for _, taken := range booked[dateKey] {
		if taken == label {
			return true
		}
	}
	return false
}
