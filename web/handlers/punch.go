package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timeclock.app/timeclock/core"
	"timeclock.app/timeclock/web/common"
)

type PunchDTO struct {
	Employee string `json:"employee" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

func (ep *Endpoint) RecordPunch(c *gin.Context) {
	var body PunchDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	punchType, err := core.ParsePunchType(body.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	if !ep.requireActiveEmployee(c, body.Employee) {
		return
	}

	ctx := c.Request.Context()
	var punchID uint
	var status core.PunchStatus
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		punchID, err = core.RecordPunch(db, body.Employee, punchType, ep.loc)
		if err != nil {
			return err
		}
		status, err = core.GetCurrentPunchStatus(db, body.Employee, ep.loc)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to record punch: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"punchId": punchID,
		"status":  status,
	})
}

func (ep *Endpoint) PunchStatus(c *gin.Context) {
	employee := c.Query("employee")
	if employee == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name is required"))
		return
	}

	if !ep.requireActiveEmployee(c, employee) {
		return
	}

	ctx := c.Request.Context()
	var status core.PunchStatus
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		status, err = core.GetCurrentPunchStatus(db, employee, ep.loc)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to get punch status: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
