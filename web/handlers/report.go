package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timeclock.app/timeclock/core"
	"timeclock.app/timeclock/web/common"
)

type TimeEntryDTO struct {
	EmployeeName string          `json:"employeeName" binding:"required"`
	Date         common.DateOnly `json:"date"`
	Hours        float64         `json:"hours"`
	LunchTaken   bool            `json:"lunchTaken"`
}

func (ep *Endpoint) SaveHours(c *gin.Context) {
	var body TimeEntryDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if body.Date.IsZero() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name and date are required"))
		return
	}

	ctx := c.Request.Context()
	var entryID uint
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		entryID, err = core.SaveTimeEntry(db, body.EmployeeName, body.Date.String(), body.Hours, body.LunchTaken)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to save time entry: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"entryId": entryID,
	})
}

func (ep *Endpoint) WeeklyReport(c *gin.Context) {
	ctx := c.Request.Context()
	var entries []core.TimeEntry
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		entries, err = core.GetWeeklyReport(db, ep.loc)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to get weekly report: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// TestConnection probes the store with a trivial query so a misconfigured
// deployment fails loudly here instead of on the first punch.
func (ep *Endpoint) TestConnection(c *gin.Context) {
	ctx := c.Request.Context()
	var count int64
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Model(&core.Employee{}).Count(&count).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Database connection failed: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connection successful",
	})
}
