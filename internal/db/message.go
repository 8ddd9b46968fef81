package db

import "gorm.io/gorm"

// Message is one entry in the append-only motivational chat between two
// partnered users. Only the read flag is ever mutated after insert.
type Message struct {
	gorm.Model
	SenderID   string `gorm:"size:36;index;not null"`
	ReceiverID string `gorm:"size:36;index;not null"`
	Body       string `gorm:"type:text;not null"`
	Read       bool   `gorm:"not null;default:false"`
}
