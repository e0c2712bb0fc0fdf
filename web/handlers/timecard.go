package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timeclock.app/timeclock/core"
	"timeclock.app/timeclock/utils"
	"timeclock.app/timeclock/web/common"
)

// weekEndingOrDefault falls back to the upcoming/current Saturday in the
// business timezone when the query param is omitted.
func (ep *Endpoint) weekEndingOrDefault(c *gin.Context) string {
	weekEnding := c.Query("weekEnding")
	if weekEnding == "" {
		weekEnding = utils.UpcomingSaturday(utils.NowIn(ep.loc)).Format(utils.DateLayout)
	}
	return weekEnding
}

func (ep *Endpoint) GetTimecard(c *gin.Context) {
	employee := c.Query("employee")
	if employee == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name is required"))
		return
	}

	if !ep.requireActiveEmployee(c, employee) {
		return
	}

	weekEnding := ep.weekEndingOrDefault(c)

	ctx := c.Request.Context()
	var timecard []core.PunchRecord
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		timecard, err = core.GetWeeklyTimecard(db, employee, weekEnding)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to get timecard: "+err.Error()))
		return
	}

	totalHours := 0.0
	for _, rec := range timecard {
		totalHours += rec.TotalHours
	}

	c.JSON(http.StatusOK, gin.H{
		"timecard":     timecard,
		"totalHours":   totalHours,
		"weekEnding":   weekEnding,
		"employeeName": employee,
	})
}

type OffDayDTO struct {
	EmployeeName string          `json:"employeeName" binding:"required"`
	Date         common.DateOnly `json:"date"`
}

func (ep *Endpoint) MarkOffDay(c *gin.Context) {
	var body OffDayDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if body.Date.IsZero() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name and date are required"))
		return
	}

	ctx := c.Request.Context()
	var recordID uint
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		recordID, err = core.MarkOffDay(db, body.EmployeeName, body.Date.String())
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to mark off day: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"recordId": recordID,
	})
}
