package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"timeclock.app/timeclock/core"
)

type Endpoint struct {
	dm  *core.DatabaseManager
	loc *time.Location
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, loc *time.Location) {
	ep := &Endpoint{dm: dm, loc: loc}

	r.GET("/employees", ep.ListEmployees)
	r.POST("/employees", ep.AddEmployee)
	r.DELETE("/employees", ep.DeleteEmployee)

	r.POST("/punch", ep.RecordPunch)
	r.GET("/punch", ep.PunchStatus)

	r.GET("/timecard", ep.GetTimecard)
	r.POST("/offday", ep.MarkOffDay)

	r.GET("/export/csv", ep.ExportCSV)
	r.GET("/export/xlsx", ep.ExportXLSX)

	r.POST("/hours", ep.SaveHours)
	r.GET("/report", ep.WeeklyReport)

	r.GET("/test", ep.TestConnection)
}

// isDuplicateKey matches a unique-constraint violation by error text, the
// only portable signal across postgres and the sqlite used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// isMissingSchema detects a store that has not been provisioned yet.
func isMissingSchema(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return (strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist")) ||
		strings.Contains(msg, "no such table")
}
