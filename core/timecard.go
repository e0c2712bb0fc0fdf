package core

import (
	"time"

	"gorm.io/gorm"

	"timeclock.app/timeclock/utils"
)

// GetWeeklyTimecard fetches the employee's punch records for the
// Sunday-Saturday week ending on weekEndingDate, ascending by date. Missing
// days are not synthesized; the caller owns summation and display slotting.
func GetWeeklyTimecard(db *gorm.DB, employeeName, weekEndingDate string) ([]PunchRecord, error) {
	sunday, err := utils.WeekStart(weekEndingDate)
	if err != nil {
		return nil, err
	}

	records := make([]PunchRecord, 0)
	err = db.Where("employee_name = ? AND date >= ? AND date <= ?", employeeName, sunday, weekEndingDate).
		Order("date").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// SaveTimeEntry appends a manually entered hours log row.
func SaveTimeEntry(db *gorm.DB, employeeName, date string, hours float64, lunchTaken bool) (uint, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return 0, err
	}
	entry := TimeEntry{
		EmployeeName: employeeName,
		Date:         date,
		Hours:        hours,
		LunchTaken:   lunchTaken,
	}
	if err := db.Create(&entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// GetWeeklyReport returns all time entries in the current Sunday-Saturday
// week of the business timezone, ordered by employee then date.
func GetWeeklyReport(db *gorm.DB, loc *time.Location) ([]TimeEntry, error) {
	saturday := utils.UpcomingSaturday(utils.NowIn(loc))
	sunday := saturday.AddDate(0, 0, -6)

	entries := make([]TimeEntry, 0)
	err := db.Where("date >= ? AND date <= ?", sunday.Format(utils.DateLayout), saturday.Format(utils.DateLayout)).
		Order("employee_name").
		Order("date").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
