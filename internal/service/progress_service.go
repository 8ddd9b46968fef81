package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/state"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressService owns the per-user progress document. The document is
// always read and written whole: last write wins, no version token.
type ProgressService struct {
	db *gorm.DB
}

// NewProgressService constructs a ProgressService.
func NewProgressService(gdb *gorm.DB) *ProgressService {
	return &ProgressService{db: gdb}
}

// Load fetches the user's document. A user with no row yields (nil, nil);
// callers synthesize the default state for today in that case.
func (s *ProgressService) Load(userID string) (*state.AppState, error) {
	var row db.UserProgress
	if err := s.db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}

	return decodeProgressRow(row)
}

// Save upserts the whole document keyed by user_id.
func (s *ProgressService) Save(userID string, st state.AppState) error {
	if st.Progress == nil {
		st.Progress = map[string]state.DailyProgress{}
	}

	encoded, err := json.Marshal(st.Progress)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	row := db.UserProgress{
		UserID:           userID,
		CurrentDateValue: st.CurrentDate,
		Progress:         string(encoded),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"current_date_value": row.CurrentDateValue,
			"progress":           row.Progress,
			"updated_at":         gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	return nil
}

func decodeProgressRow(row db.UserProgress) (*state.AppState, error) {
	st := state.AppState{
		CurrentDate: strings.TrimSpace(row.CurrentDateValue),
		Progress:    map[string]state.DailyProgress{},
	}
	if st.CurrentDate == "" {
		st.CurrentDate = state.Today()
	}

	if strings.TrimSpace(row.Progress) != "" {
		if err := json.Unmarshal([]byte(row.Progress), &st.Progress); err != nil {
			return nil, fmt.Errorf("decode progress: %w", err)
		}
	}

	return &st, nil
}
