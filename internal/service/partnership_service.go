package service

import (
	"errors"
	"fmt"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/realtime"
	"github.com/amalanberkah/internal/state"
	"gorm.io/gorm"
)

var (
	// ErrSelfInvite is returned when a user invites their own id.
	ErrSelfInvite = errors.New("cannot invite yourself")
	// ErrPartnershipExists is returned when either party already has a
	// pending or accepted partnership.
	ErrPartnershipExists = errors.New("partnership already exists or is pending")
	// ErrPartnerNotFound is returned when the invited id is no account.
	ErrPartnerNotFound = errors.New("partner not found")
)

// MutationResult tags the outcome of accept/reject so callers can tell
// "already handled" apart from a storage failure.
type MutationResult int

const (
	// MutationApplied means the pending row was transitioned.
	MutationApplied MutationResult = iota
	// MutationNoPendingRow means no matching pending row existed: the
	// invitation was already handled or never involved the caller.
	MutationNoPendingRow
)

// PartnershipService manages the two-party pairing lifecycle and the
// read-only view of a partner's progress.
type PartnershipService struct {
	db       *gorm.DB
	progress *ProgressService
	hub      *realtime.Hub
}

// NewPartnershipService constructs a PartnershipService.
func NewPartnershipService(gdb *gorm.DB, progress *ProgressService, hub *realtime.Hub) *PartnershipService {
	return &PartnershipService{db: gdb, progress: progress, hub: hub}
}

// Invitations partitions a user's pending rows by direction.
type Invitations struct {
	Sent     []db.Partnership
	Received []db.Partnership
}

// orderPair returns the two ids with the lexically smaller one first, so a
// pair always maps to the same row regardless of who invites.
func orderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Invite creates a pending partnership from userID to partnerID.
// Rejected rows do not block a re-invite; pending and accepted ones do,
// for either participant.
func (s *PartnershipService) Invite(userID, partnerID string) (*db.Partnership, error) {
	if userID == partnerID {
		return nil, ErrSelfInvite
	}

	var partner db.User
	if err := s.db.Where("id = ?", partnerID).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("find partner: %w", err)
	}

	pair := []string{userID, partnerID}
	var existing int64
	if err := s.db.Model(&db.Partnership{}).
		Where("user1_id IN ? OR user2_id IN ?", pair, pair).
		Where("status IN ?", []string{db.PartnershipPending, db.PartnershipAccepted}).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("check existing partnership: %w", err)
	}
	if existing > 0 {
		return nil, ErrPartnershipExists
	}

	user1, user2 := orderPair(userID, partnerID)
	row := db.Partnership{
		User1ID:   user1,
		User2ID:   user2,
		Status:    db.PartnershipPending,
		InvitedBy: userID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create partnership: %w", err)
	}

	s.notifyBoth(row)
	return &row, nil
}

// Pending returns the user's pending invitations split into sent and
// received. Read failures yield empty partitions plus the error.
func (s *PartnershipService) Pending(userID string) (Invitations, error) {
	var rows []db.Partnership
	if err := s.db.
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Where("status = ?", db.PartnershipPending).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return Invitations{}, fmt.Errorf("list invitations: %w", err)
	}

	inv := Invitations{Sent: []db.Partnership{}, Received: []db.Partnership{}}
	for _, row := range rows {
		if row.InvitedBy == userID {
			inv.Sent = append(inv.Sent, row)
		} else {
			inv.Received = append(inv.Received, row)
		}
	}
	return inv, nil
}

// Accept transitions a pending row involving userID to accepted.
func (s *PartnershipService) Accept(userID string, partnershipID uint) (MutationResult, error) {
	return s.resolve(userID, partnershipID, db.PartnershipAccepted)
}

// Reject transitions a pending row involving userID to rejected.
func (s *PartnershipService) Reject(userID string, partnershipID uint) (MutationResult, error) {
	return s.resolve(userID, partnershipID, db.PartnershipRejected)
}

func (s *PartnershipService) resolve(userID string, partnershipID uint, status string) (MutationResult, error) {
	res := s.db.Model(&db.Partnership{}).
		Where("id = ?", partnershipID).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Where("status = ?", db.PartnershipPending).
		Update("status", status)
	if res.Error != nil {
		return MutationNoPendingRow, fmt.Errorf("resolve partnership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return MutationNoPendingRow, nil
	}

	var row db.Partnership
	if err := s.db.First(&row, partnershipID).Error; err == nil {
		s.notifyBoth(row)
	}
	return MutationApplied, nil
}

// Current returns the user's accepted partnership, or nil when none.
func (s *PartnershipService) Current(userID string) (*db.Partnership, error) {
	var row db.Partnership
	if err := s.db.
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Where("status = ?", db.PartnershipAccepted).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load partnership: %w", err)
	}
	return &row, nil
}

// Accepted reports whether userID and partnerID share an accepted
// partnership. Used as the precondition for partner reads and messaging.
func (s *PartnershipService) Accepted(userID, partnerID string) (bool, error) {
	user1, user2 := orderPair(userID, partnerID)
	var count int64
	if err := s.db.Model(&db.Partnership{}).
		Where("user1_id = ? AND user2_id = ?", user1, user2).
		Where("status = ?", db.PartnershipAccepted).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check partnership: %w", err)
	}
	return count > 0, nil
}

// PartnerProgress re-verifies the accepted pairing, then fetches the
// partner's document read-only. Nil when there is no accepted partnership
// or the partner has no data yet; a pending invite grants nothing.
func (s *PartnershipService) PartnerProgress(userID, partnerID string) (*state.AppState, error) {
	ok, err := s.Accepted(userID, partnerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return s.progress.Load(partnerID)
}

func (s *PartnershipService) notifyBoth(row db.Partnership) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(row.User1ID, realtime.EventPartnership)
	s.hub.Publish(row.User2ID, realtime.EventPartnership)
}
