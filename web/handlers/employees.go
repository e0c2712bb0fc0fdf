package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timeclock.app/timeclock/core"
	"timeclock.app/timeclock/web/common"
)

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	var employees []core.Employee
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		employees, err = core.GetEmployees(db)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to get employees: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

type AddEmployeeDTO struct {
	Name string `json:"name" binding:"required"`
}

func (ep *Endpoint) AddEmployee(c *gin.Context) {
	var body AddEmployeeDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name is required"))
		return
	}

	ctx := c.Request.Context()
	var employeeID uint
	err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		employeeID, err = core.AddEmployee(db, name)
		return err
	})
	if err != nil {
		// The registry's active check and the unique constraint (which
		// catches the two-writer race) both mean the same thing here.
		if errors.Is(err, core.ErrEmployeeExists) || isDuplicateKey(err) {
			c.JSON(http.StatusConflict, common.NewErrorResponse(fmt.Sprintf("Employee \"%s\" already exists", name)))
			return
		}
		if isMissingSchema(err) {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Database not set up. Please run the migrate tool."))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to add employee: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"employeeId": employeeID,
	})
}

func (ep *Endpoint) DeleteEmployee(c *gin.Context) {
	idParam := c.Query("id")
	if idParam == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee ID is required"))
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	ctx := c.Request.Context()
	var deleted int64
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		deleted, err = core.DeleteEmployee(db, uint(id))
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to delete employee: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"deletedRows": deleted,
	})
}

// requireActiveEmployee resolves the employee by name and writes a 404 when
// the name is unknown or deactivated. Callers stop on false.
func (ep *Endpoint) requireActiveEmployee(c *gin.Context, name string) bool {
	ctx := c.Request.Context()
	var emp *core.Employee
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		emp, err = core.FindEmployeeByName(db, name)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return false
	}
	if emp == nil || !emp.Active {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Employee not found or inactive"))
		return false
	}
	return true
}
