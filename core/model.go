package core

import "time"

type Employee struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

func (Employee) TableName() string {
	return "employees"
}

// PunchRecord is one employee-day of attendance. The four time fields hold
// 12-hour display strings ("9:00 AM"); nil means not punched. TotalHours is
// derived from the time fields, never authored directly.
type PunchRecord struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeName   string  `gorm:"column:employee_name;not null;uniqueIndex:idx_punch_employee_date" json:"employee_name"`
	Date           string  `gorm:"type:date;not null;uniqueIndex:idx_punch_employee_date" json:"date"`
	DayOfWeek      string  `gorm:"column:day_of_week" json:"day_of_week"`
	PunchInTime    *string `gorm:"column:punch_in_time" json:"punch_in_time"`
	PunchOutTime   *string `gorm:"column:punch_out_time" json:"punch_out_time"`
	LunchStartTime *string `gorm:"column:lunch_start_time" json:"lunch_start_time"`
	LunchEndTime   *string `gorm:"column:lunch_end_time" json:"lunch_end_time"`
	TotalHours     float64 `gorm:"column:total_hours;type:decimal(10,2);not null;default:0" json:"total_hours"`
	IsOffDay       bool    `gorm:"column:is_off_day;not null;default:false" json:"is_off_day"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP" json:"-"`
}

func (PunchRecord) TableName() string {
	return "punch_records"
}

// TimeEntry is the manually entered hours log. Append-only, independent of
// punch records.
type TimeEntry struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeName string  `gorm:"column:employee_name;not null;index" json:"employee_name"`
	Date         string  `gorm:"type:date;not null" json:"date"`
	Hours        float64 `gorm:"type:decimal(10,2);not null;default:0" json:"hours"`
	LunchTaken   bool    `gorm:"column:lunch_taken;not null;default:false" json:"lunch_taken"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"-"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
