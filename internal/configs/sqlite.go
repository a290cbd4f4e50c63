package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "recruit-timeline.com/recruit-timeline/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserProfile{},
		&model.UserTimeline{},
		&model.TaskInstance{},
		&model.ProgressEvent{},
		&model.Notification{},
		&model.Achievement{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
