package core

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrEmployeeExists is returned when adding a name that is already active.
var ErrEmployeeExists = errors.New("employee already exists")

// GetEmployees lists active employees ordered by name.
func GetEmployees(db *gorm.DB) ([]Employee, error) {
	employees := make([]Employee, 0)
	err := db.Where("active = ?", true).Order("name").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func FindEmployeeByName(db *gorm.DB, name string) (*Employee, error) {
	var emp Employee
	result := db.Where("name = ?", name).Take(&emp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}

func FindEmployeeByID(db *gorm.DB, id uint) (*Employee, error) {
	var emp Employee
	result := db.First(&emp, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}

// AddEmployee registers a name. Re-adding a deactivated name reactivates the
// existing row and resets its history: the old punch records and time
// entries are purged, a clean slate by policy.
func AddEmployee(db *gorm.DB, name string) (uint, error) {
	existing, err := FindEmployeeByName(db, name)
	if err != nil {
		return 0, err
	}

	if existing != nil {
		if existing.Active {
			return 0, ErrEmployeeExists
		}
		if err := db.Model(&Employee{}).Where("id = ?", existing.ID).
			Update("active", true).Error; err != nil {
			return 0, fmt.Errorf("failed to reactivate employee: %w", err)
		}
		if err := purgeEmployeeHistory(db, name); err != nil {
			return 0, err
		}
		return existing.ID, nil
	}

	emp := Employee{Name: name, Active: true}
	if err := db.Create(&emp).Error; err != nil {
		return 0, err
	}
	return emp.ID, nil
}

// DeleteEmployee deactivates the employee and purges their history. The
// active flag survives, the records do not.
func DeleteEmployee(db *gorm.DB, id uint) (int64, error) {
	emp, err := FindEmployeeByID(db, id)
	if err != nil {
		return 0, err
	}
	if emp == nil {
		return 0, nil
	}

	result := db.Model(&Employee{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate employee: %w", result.Error)
	}
	if err := purgeEmployeeHistory(db, emp.Name); err != nil {
		return 0, err
	}
	return result.RowsAffected, nil
}

func purgeEmployeeHistory(db *gorm.DB, name string) error {
	if err := db.Where("employee_name = ?", name).Delete(&PunchRecord{}).Error; err != nil {
		return fmt.Errorf("failed to purge punch records: %w", err)
	}
	if err := db.Where("employee_name = ?", name).Delete(&TimeEntry{}).Error; err != nil {
		return fmt.Errorf("failed to purge time entries: %w", err)
	}
	return nil
}
