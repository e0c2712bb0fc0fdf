package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEmployee(t *testing.T) {
	db := setupTestDB(t)

	id, err := AddEmployee(db, "Alice")
	require.NoError(t, err)
	assert.NotZero(t, id)

	emp, err := FindEmployeeByName(db, "Alice")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.True(t, emp.Active)
}

func TestAddEmployee_ActiveDuplicate(t *testing.T) {
	db := setupTestDB(t)
	mustAddEmployee(t, db, "Alice")

	_, err := AddEmployee(db, "Alice")
	assert.ErrorIs(t, err, ErrEmployeeExists)
}

func TestAddEmployee_NamesAreCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	mustAddEmployee(t, db, "Alice")

	id, err := AddEmployee(db, "alice")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestDeleteEmployee_DeactivatesAndPurges(t *testing.T) {
	db := setupTestDB(t)
	id := mustAddEmployee(t, db, "Alice")

	_, err := RecordPunchAt(db, "Alice", PunchIn, punchDay(9, 0))
	require.NoError(t, err)
	_, err = SaveTimeEntry(db, "Alice", "2024-06-10", 8, true)
	require.NoError(t, err)

	deleted, err := DeleteEmployee(db, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	emp, err := FindEmployeeByID(db, id)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.False(t, emp.Active)

	// Deactivated employees disappear from the listing.
	employees, err := GetEmployees(db)
	require.NoError(t, err)
	assert.Empty(t, employees)

	var punches, entries int64
	require.NoError(t, db.Model(&PunchRecord{}).Where("employee_name = ?", "Alice").Count(&punches).Error)
	require.NoError(t, db.Model(&TimeEntry{}).Where("employee_name = ?", "Alice").Count(&entries).Error)
	assert.Zero(t, punches)
	assert.Zero(t, entries)
}

func TestDeleteEmployee_UnknownID(t *testing.T) {
	db := setupTestDB(t)

	deleted, err := DeleteEmployee(db, 9999)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestAddEmployee_ReactivationResetsHistory(t *testing.T) {
	db := setupTestDB(t)
	id := mustAddEmployee(t, db, "Alice")

	_, err := RecordPunchAt(db, "Alice", PunchIn, punchDay(9, 0))
	require.NoError(t, err)

	_, err = DeleteEmployee(db, id)
	require.NoError(t, err)

	// History written while deactivated is also purged on reactivation.
	_, err = SaveTimeEntry(db, "Alice", "2024-06-11", 4, false)
	require.NoError(t, err)

	readdedID, err := AddEmployee(db, "Alice")
	require.NoError(t, err)
	assert.Equal(t, id, readdedID)

	emp, err := FindEmployeeByName(db, "Alice")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.True(t, emp.Active)

	var punches, entries int64
	require.NoError(t, db.Model(&PunchRecord{}).Where("employee_name = ?", "Alice").Count(&punches).Error)
	require.NoError(t, db.Model(&TimeEntry{}).Where("employee_name = ?", "Alice").Count(&entries).Error)
	assert.Zero(t, punches)
	assert.Zero(t, entries)
}

func TestGetEmployees_OrderedByName(t *testing.T) {
	db := setupTestDB(t)
	mustAddEmployee(t, db, "Carol")
	mustAddEmployee(t, db, "Alice")
	mustAddEmployee(t, db, "Bob")

	employees, err := GetEmployees(db)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "Alice", employees[0].Name)
	assert.Equal(t, "Bob", employees[1].Name)
	assert.Equal(t, "Carol", employees[2].Name)
}
