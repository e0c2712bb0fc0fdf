package core

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timeclock.app/timeclock/utils"
)

type PunchType string

const (
	PunchIn         PunchType = "IN"
	PunchOut        PunchType = "OUT"
	PunchLunchStart PunchType = "LUNCH_START"
	PunchLunchEnd   PunchType = "LUNCH_END"
)

// ParsePunchType validates a wire value. "LUNCH" is accepted as a legacy
// alias for lunch-start.
func ParsePunchType(s string) (PunchType, error) {
	switch s {
	case "IN":
		return PunchIn, nil
	case "OUT":
		return PunchOut, nil
	case "LUNCH_START", "LUNCH":
		return PunchLunchStart, nil
	case "LUNCH_END":
		return PunchLunchEnd, nil
	}
	return "", fmt.Errorf("invalid punch type %q", s)
}

func (p PunchType) column() string {
	switch p {
	case PunchIn:
		return "punch_in_time"
	case PunchOut:
		return "punch_out_time"
	case PunchLunchStart:
		return "lunch_start_time"
	case PunchLunchEnd:
		return "lunch_end_time"
	}
	return ""
}

type PunchStatus string

const (
	StatusOut   PunchStatus = "OUT"
	StatusIn    PunchStatus = "IN"
	StatusLunch PunchStatus = "LUNCH"
)

// RecordPunch applies a punch event to today's record for the employee,
// where "today" is resolved in the business timezone. Existence/activity of
// the employee is the route layer's concern.
func RecordPunch(db *gorm.DB, employeeName string, punchType PunchType, loc *time.Location) (uint, error) {
	return RecordPunchAt(db, employeeName, punchType, utils.NowIn(loc))
}

// RecordPunchAt is RecordPunch with an explicit event time. The record for
// (employee, date) is created or updated in a single upsert keyed on the
// uniqueness constraint, so two first-punch requests cannot both insert.
func RecordPunchAt(db *gorm.DB, employeeName string, punchType PunchType, now time.Time) (uint, error) {
	date := now.Format(utils.DateLayout)
	clock := ClockTime{Hour: now.Hour(), Minute: now.Minute()}.Format()

	rec := PunchRecord{
		EmployeeName: employeeName,
		Date:         date,
		DayOfWeek:    now.Weekday().String(),
	}
	switch punchType {
	case PunchIn:
		rec.PunchInTime = &clock
	case PunchOut:
		rec.PunchOutTime = &clock
	case PunchLunchStart:
		rec.LunchStartTime = &clock
	case PunchLunchEnd:
		rec.LunchEndTime = &clock
	default:
		return 0, fmt.Errorf("invalid punch type %q", punchType)
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_name"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			punchType.column(): clock,
			"updated_at":       time.Now(),
		}),
	}).Create(&rec).Error
	if err != nil {
		return 0, fmt.Errorf("failed to record punch: %w", err)
	}

	// Re-read: on conflict the insert path does not report the existing id,
	// and the recompute below needs the merged row anyway.
	var merged PunchRecord
	if err := db.Where("employee_name = ? AND date = ?", employeeName, date).
		Take(&merged).Error; err != nil {
		return 0, err
	}

	if punchType == PunchOut {
		if err := updateTotalHours(db, &merged); err != nil {
			return 0, err
		}
	}

	return merged.ID, nil
}

// updateTotalHours recomputes total_hours from the record's time fields.
// A no-op while punch-in or punch-out is still unset.
func updateTotalHours(db *gorm.DB, rec *PunchRecord) error {
	if rec.PunchInTime == nil || rec.PunchOutTime == nil {
		return nil
	}
	hours, err := CalculateHours(*rec.PunchInTime, *rec.PunchOutTime, rec.LunchStartTime, rec.LunchEndTime)
	if err != nil {
		return err
	}
	rec.TotalHours = hours
	return db.Model(&PunchRecord{}).
		Where("employee_name = ? AND date = ?", rec.EmployeeName, rec.Date).
		Update("total_hours", hours).Error
}

// GetCurrentPunchStatus derives the employee's state from today's record.
func GetCurrentPunchStatus(db *gorm.DB, employeeName string, loc *time.Location) (PunchStatus, error) {
	return PunchStatusForDate(db, employeeName, utils.NowIn(loc).Format(utils.DateLayout))
}

// PunchStatusForDate evaluates the status cascade in strict order: a missing
// record or punch-in means OUT, a punch-out wins over an open lunch, an open
// lunch beats IN.
func PunchStatusForDate(db *gorm.DB, employeeName, date string) (PunchStatus, error) {
	var rec PunchRecord
	err := db.Where("employee_name = ? AND date = ?", employeeName, date).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StatusOut, nil
	}
	if err != nil {
		return "", err
	}

	if rec.PunchInTime == nil {
		return StatusOut, nil
	}
	if rec.PunchOutTime != nil {
		return StatusOut, nil
	}
	if rec.LunchStartTime != nil && rec.LunchEndTime == nil {
		return StatusLunch, nil
	}
	return StatusIn, nil
}

// MarkOffDay force-writes a zero-hours off record for the date, discarding
// any punches already stored for it.
func MarkOffDay(db *gorm.DB, employeeName, date string) (uint, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return 0, err
	}

	rec := PunchRecord{
		EmployeeName: employeeName,
		Date:         date,
		DayOfWeek:    day.Weekday().String(),
		IsOffDay:     true,
	}
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_name"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"day_of_week":      rec.DayOfWeek,
			"is_off_day":       true,
			"total_hours":      0,
			"punch_in_time":    nil,
			"punch_out_time":   nil,
			"lunch_start_time": nil,
			"lunch_end_time":   nil,
			"updated_at":       time.Now(),
		}),
	}).Create(&rec).Error
	if err != nil {
		return 0, fmt.Errorf("failed to mark off day: %w", err)
	}

	var merged PunchRecord
	if err := db.Where("employee_name = ? AND date = ?", employeeName, date).
		Take(&merged).Error; err != nil {
		return 0, err
	}
	return merged.ID, nil
}
