package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timeclock.app/timeclock/core"
	"timeclock.app/timeclock/web/common"
)

func exportFileName(employee, weekEnding, ext string) string {
	return fmt.Sprintf("timecard_%s_%s.%s", strings.ReplaceAll(employee, " ", "_"), weekEnding, ext)
}

func (ep *Endpoint) ExportCSV(c *gin.Context) {
	employee := c.Query("employee")
	if employee == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name is required"))
		return
	}

	weekEnding := ep.weekEndingOrDefault(c)

	ctx := c.Request.Context()
	var csv string
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		csv, err = core.ExportTimecardCSV(db, employee, weekEnding)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to export CSV: "+err.Error()))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(employee, weekEnding, "csv")))
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func (ep *Endpoint) ExportXLSX(c *gin.Context) {
	employee := c.Query("employee")
	if employee == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Employee name is required"))
		return
	}

	weekEnding := ep.weekEndingOrDefault(c)

	ctx := c.Request.Context()
	var book []byte
	if err := ep.dm.Exec(ctx, func(db *gorm.DB) error {
		var err error
		book, err = core.ExportTimecardXLSX(db, employee, weekEnding)
		return err
	}); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to export XLSX: "+err.Error()))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(employee, weekEnding, "xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}
