package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"timeclock.app/timeclock/config"
	"timeclock.app/timeclock/core"
)

// Provisions the schema: employees, punch_records (with the unique
// employee/date index) and time_entries.
func main() {
	cfg := config.Load()

	dm, err := core.New(cfg.DSN, 1, core.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	if err := dm.Exec(context.Background(), func(db *gorm.DB) error {
		return db.AutoMigrate(&core.Employee{}, &core.PunchRecord{}, &core.TimeEntry{})
	}); err != nil {
		log.Fatal("migration failed: ", err)
	}

	log.Println("schema is up to date")
}
