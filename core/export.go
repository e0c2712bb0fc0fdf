package core

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var timecardColumns = []string{
	"Employee Name", "Date", "Day", "Punch In", "Punch Out",
	"Lunch Start", "Lunch End", "Total Hours", "Status",
}

func (r PunchRecord) Status() string {
	if r.IsOffDay {
		return "OFF"
	}
	return "WORK"
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportTimecardCSV renders the weekly timecard as delimited text: a header
// row, one row per record, a blank line and a totals line. Only the employee
// name is quoted; punch times and dates cannot contain commas.
func ExportTimecardCSV(db *gorm.DB, employeeName, weekEndingDate string) (string, error) {
	records, err := GetWeeklyTimecard(db, employeeName, weekEndingDate)
	if err != nil {
		return "", err
	}

	rows := []string{strings.Join(timecardColumns, ",")}
	totalHours := 0.0
	for _, rec := range records {
		row := []string{
			`"` + rec.EmployeeName + `"`,
			rec.Date,
			rec.DayOfWeek,
			orEmpty(rec.PunchInTime),
			orEmpty(rec.PunchOutTime),
			orEmpty(rec.LunchStartTime),
			orEmpty(rec.LunchEndTime),
			fmt.Sprintf("%.2f", rec.TotalHours),
			rec.Status(),
		}
		rows = append(rows, strings.Join(row, ","))
		totalHours += rec.TotalHours
	}
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf(`"Total Weekly Hours:",%.2f`, totalHours))

	return strings.Join(rows, "\n"), nil
}

// ExportTimecardXLSX renders the same timecard as a spreadsheet.
func ExportTimecardXLSX(db *gorm.DB, employeeName, weekEndingDate string) ([]byte, error) {
	records, err := GetWeeklyTimecard(db, employeeName, weekEndingDate)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timecard"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(timecardColumns))
	for i, col := range timecardColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	totalHours := 0.0
	for i, rec := range records {
		row := []interface{}{
			rec.EmployeeName,
			rec.Date,
			rec.DayOfWeek,
			orEmpty(rec.PunchInTime),
			orEmpty(rec.PunchOutTime),
			orEmpty(rec.LunchStartTime),
			orEmpty(rec.LunchEndTime),
			rec.TotalHours,
			rec.Status(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
		totalHours += rec.TotalHours
	}

	totalsCell := fmt.Sprintf("A%d", len(records)+3)
	totalsRow := []interface{}{"Total Weekly Hours:", totalHours}
	if err := f.SetSheetRow(sheet, totalsCell, &totalsRow); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
