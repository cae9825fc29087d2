package service

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// beginningOfWeek returns the Monday of t's week at midnight local time.
func beginningOfWeek(t time.Time) time.Time {
	t = beginningOfDay(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func inclusiveDayCount(from, to time.Time) int {
	count := 0
	for d := beginningOfDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		count++
	}
	return count
}

// WeekOfMonth returns the 1-based Monday-first week number of date within its
// month: the row the date lands on in the calendar grid.
func WeekOfMonth(date time.Time) int {
	date = beginningOfDay(date)
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.Local)
	startPad := (int(firstOfMonth.Weekday()) + 6) % 7
	return (startPad+date.Day()-1)/7 + 1
}
