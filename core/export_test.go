package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportTimecardCSV(t *testing.T) {
	db := setupTestDB(t)
	mustAddEmployee(t, db, "Alice")

	_, err := RecordPunchAt(db, "Alice", PunchIn, punchDay(9, 0))
	require.NoError(t, err)
	_, err = RecordPunchAt(db, "Alice", PunchLunchStart, punchDay(12, 0))
	require.NoError(t, err)
	_, err = RecordPunchAt(db, "Alice", PunchLunchEnd, punchDay(12, 30))
	require.NoError(t, err)
	_, err = RecordPunchAt(db, "Alice", PunchOut, punchDay(17, 0))
	require.NoError(t, err)

	_, err = MarkOffDay(db, "Alice", "2024-06-12")
	require.NoError(t, err)

	csv, err := ExportTimecardCSV(db, "Alice", "2024-06-15")
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Employee Name,Date,Day,Punch In,Punch Out,Lunch Start,Lunch End,Total Hours,Status", lines[0])
	assert.Equal(t, `"Alice",2024-06-10,Monday,9:00 AM,5:00 PM,12:00 PM,12:30 PM,7.50,WORK`, lines[1])
	assert.Equal(t, `"Alice",2024-06-12,Wednesday,,,,,0.00,OFF`, lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, `"Total Weekly Hours:",7.50`, lines[4])
}

func TestExportTimecardCSV_EmptyWeek(t *testing.T) {
	db := setupTestDB(t)
	mustAddEmployee(t, db, "Alice")

	csv, err := ExportTimecardCSV(db, "Alice", "2024-06-15")
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "", lines[1])
	assert.Equal(t, `"Total Weekly Hours:",0.00`, lines[2])
}

func TestExportTimecardXLSX(t *testing.T) {
	db := setupTestDB(t)
	mustAddEmployee(t, db, "Alice")

	_, err := RecordPunchAt(db, "Alice", PunchIn, punchDay(9, 0))
	require.NoError(t, err)
	_, err = RecordPunchAt(db, "Alice", PunchOut, punchDay(17, 0))
	require.NoError(t, err)

	book, err := ExportTimecardXLSX(db, "Alice", "2024-06-15")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Timecard", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee Name", name)

	employee, err := f.GetCellValue("Timecard", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", employee)

	status, err := f.GetCellValue("Timecard", "I2")
	require.NoError(t, err)
	assert.Equal(t, "WORK", status)

	label, err := f.GetCellValue("Timecard", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total Weekly Hours:", label)

	total, err := f.GetCellValue("Timecard", "B4")
	require.NoError(t, err)
	assert.Equal(t, "8", total)
}
