package db

import (
	"time"

	"gorm.io/gorm"
)

// UsageSnapshot is an hourly aggregate of usage written by the scheduler
// so the admin dashboard can chart growth without rescanning history.
type UsageSnapshot struct {
	gorm.Model
	TakenAt               time.Time `gorm:"index;not null"`
	TotalUsers            int64     `gorm:"not null"`
	ActiveToday           int64     `gorm:"not null"`
	ActiveWeek            int64     `gorm:"not null"`
	TotalHabitsCompleted  int64     `gorm:"not null"`
	AverageCompletionRate int       `gorm:"not null"`
}
