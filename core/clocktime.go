package core

import (
	"fmt"
	"time"
)

// clockLayout is the wire/storage format for punch times, e.g. "9:00 AM".
const clockLayout = "3:04 PM"

// ClockTime is a time of day with minute precision. Punch times are parsed
// into this as soon as they leave the store and formatted back only at the
// API/CSV boundary.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a 12-hour display string ("9:00 AM", "12:30 PM").
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Format renders the display form, e.g. "9:00 AM".
func (c ClockTime) Format() string {
	return time.Date(2000, 1, 1, c.Hour, c.Minute, 0, 0, time.UTC).Format(clockLayout)
}

// Minutes is minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// CalculateHours converts a punch-in/out pair (plus an optional lunch
// interval) into decimal hours. The lunch interval is subtracted only when
// both ends are present. The result is clamped to zero, which also covers
// the unsupported midnight-crossing case where out precedes in.
func CalculateHours(punchIn, punchOut string, lunchStart, lunchEnd *string) (float64, error) {
	in, err := ParseClockTime(punchIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClockTime(punchOut)
	if err != nil {
		return 0, err
	}

	totalMinutes := out.Minutes() - in.Minutes()

	if lunchStart != nil && *lunchStart != "" && lunchEnd != nil && *lunchEnd != "" {
		ls, err := ParseClockTime(*lunchStart)
		if err != nil {
			return 0, err
		}
		le, err := ParseClockTime(*lunchEnd)
		if err != nil {
			return 0, err
		}
		totalMinutes -= le.Minutes() - ls.Minutes()
	}

	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return float64(totalMinutes) / 60, nil
}
