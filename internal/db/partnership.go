package db

import "gorm.io/gorm"

const (
	// PartnershipPending is the initial status set by the inviter.
	PartnershipPending = "pending"
	// PartnershipAccepted means both parties share progress.
	PartnershipAccepted = "accepted"
	// PartnershipRejected is terminal; it does not block a re-invite.
	PartnershipRejected = "rejected"
)

// Partnership pairs exactly two users. User1ID is always the lexically
// smaller id so a pair maps to the same row regardless of who invited.
type Partnership struct {
	gorm.Model
	User1ID   string `gorm:"size:36;index;not null"`
	User2ID   string `gorm:"size:36;index;not null"`
	Status    string `gorm:"size:16;not null;default:pending"`
	InvitedBy string `gorm:"size:36;not null"`
}

// PartnerOf returns the other participant's id, or "" when userID is not
// part of the row.
func (p Partnership) PartnerOf(userID string) string {
	switch userID {
	case p.User1ID:
		return p.User2ID
	case p.User2ID:
		return p.User1ID
	default:
		return ""
	}
}
