package db

import "gorm.io/gorm"

// UserProgress holds the whole per-user progress document: the date the
// client currently treats as today plus a JSON map of DailyProgress keyed
// by YYYY-MM-DD. One row per user, replaced wholesale on every save.
type UserProgress struct {
	gorm.Model
	UserID           string `gorm:"size:36;uniqueIndex;not null"`
	CurrentDateValue string `gorm:"size:10;not null"`
	Progress         string `gorm:"type:text"`
}

// TableName keeps the table name aligned with the wire shape.
func (UserProgress) TableName() string {
	return "user_progress"
}
