package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02" // yyyy-MM-dd

// NowIn is the application's notion of "now". The business timezone comes
// from configuration, never from the host clock's zone.
func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %v", err)
	}
	return t, nil
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	return t
}

// UpcomingSaturday returns the Saturday ending the Sunday-Saturday week that
// contains t. A Saturday maps to itself.
func UpcomingSaturday(t time.Time) time.Time {
	return t.AddDate(0, 0, 6-int(t.Weekday()))
}

// WeekStart computes the Sunday six days before a Saturday week-ending date.
func WeekStart(weekEndingDate string) (string, error) {
	end, err := ParseDate(weekEndingDate)
	if err != nil {
		return "", err
	}
	return end.AddDate(0, 0, -6).Format(DateLayout), nil
}
