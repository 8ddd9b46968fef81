package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/state"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// AnalyticsService computes the admin aggregates by scanning every
// user_progress document. The data set is one JSON row per user, so the
// scan stays cheap at this product's scale.
type AnalyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb, now: time.Now}
}

// SetNow overrides the clock, mainly for tests.
func (s *AnalyticsService) SetNow(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// AdminStats is the admin dashboard headline block.
type AdminStats struct {
	TotalUsers            int64 `json:"totalUsers"`
	ActiveUsersToday      int64 `json:"activeUsersToday"`
	ActiveUsersWeek       int64 `json:"activeUsersWeek"`
	TotalHabitsCompleted  int64 `json:"totalHabitsCompleted"`
	AverageCompletionRate int   `json:"averageCompletionRate"`
}

// UserStats is one row of the admin user table.
type UserStats struct {
	UserID               string `json:"userId"`
	Email                string `json:"email"`
	RegisteredAt         string `json:"registeredAt"`
	TotalHabitsCompleted int    `json:"totalHabitsCompleted"`
	TotalDaysActive      int    `json:"totalDaysActive"`
	CurrentStreak        int    `json:"currentStreak"`
	LastActiveDate       string `json:"lastActiveDate,omitempty"`
}

// Stats aggregates over all user documents: active-today and active-week
// counts by presence of completed habits on/after the cutoff, plus the
// average rolling 7-day completion rate across users.
func (s *AnalyticsService) Stats() (AdminStats, error) {
	docs, err := s.loadAll()
	if err != nil {
		return AdminStats{}, err
	}

	today := s.now().Format(state.DateLayout)
	weekAgo := s.now().AddDate(0, 0, -7).Format(state.DateLayout)

	stats := AdminStats{TotalUsers: int64(len(docs))}
	var rateSum float64
	for _, doc := range docs {
		if len(doc.state.Progress[today].CompletedHabitIDs) > 0 {
			stats.ActiveUsersToday++
		}

		activeWeek := false
		for date, day := range doc.state.Progress {
			stats.TotalHabitsCompleted += int64(len(day.CompletedHabitIDs))
			if date >= weekAgo && len(day.CompletedHabitIDs) > 0 {
				activeWeek = true
			}
		}
		if activeWeek {
			stats.ActiveUsersWeek++
		}

		completedDays := 0
		for i := 0; i < 7; i++ {
			date := s.now().AddDate(0, 0, -i).Format(state.DateLayout)
			if len(doc.state.Progress[date].CompletedHabitIDs) > 0 {
				completedDays++
			}
		}
		rateSum += float64(completedDays) / 7 * 100
	}

	if len(docs) > 0 {
		stats.AverageCompletionRate = int(rateSum/float64(len(docs)) + 0.5)
	}
	return stats, nil
}

// Users returns per-user stats for the admin table, joined with the
// account email and sorted by most recently active.
func (s *AnalyticsService) Users() ([]UserStats, error) {
	docs, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	accountsByID := map[string]db.User{}
	var accounts []db.User
	if err := s.db.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range accounts {
		accountsByID[u.ID] = u
	}

	out := make([]UserStats, 0, len(docs))
	for _, doc := range docs {
		row := UserStats{UserID: doc.userID}
		if u, ok := accountsByID[doc.userID]; ok {
			row.Email = u.Email
			row.RegisteredAt = u.CreatedAt.Format(state.DateLayout)
		}

		dates := make([]string, 0, len(doc.state.Progress))
		for date, day := range doc.state.Progress {
			row.TotalHabitsCompleted += len(day.CompletedHabitIDs)
			if len(day.CompletedHabitIDs) > 0 {
				row.TotalDaysActive++
			}
			dates = append(dates, date)
		}
		sort.Strings(dates)
		if len(dates) > 0 {
			row.LastActiveDate = dates[len(dates)-1]
		}
		row.CurrentStreak = s.streak(doc.state)

		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].LastActiveDate > out[j].LastActiveDate })
	return out, nil
}

// streak counts consecutive active days ending today. A quiet today does
// not break a streak that ran through yesterday.
func (s *AnalyticsService) streak(doc state.AppState) int {
	streak := 0
	for i := 0; i < 365; i++ {
		date := s.now().AddDate(0, 0, -i).Format(state.DateLayout)
		if len(doc.Progress[date].CompletedHabitIDs) > 0 {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Snapshot persists the current aggregates as an hourly usage row.
func (s *AnalyticsService) Snapshot() error {
	stats, err := s.Stats()
	if err != nil {
		return err
	}

	row := db.UsageSnapshot{
		TakenAt:               s.now().Truncate(time.Hour),
		TotalUsers:            stats.TotalUsers,
		ActiveToday:           stats.ActiveUsersToday,
		ActiveWeek:            stats.ActiveUsersWeek,
		TotalHabitsCompleted:  stats.TotalHabitsCompleted,
		AverageCompletionRate: stats.AverageCompletionRate,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("write usage snapshot: %w", err)
	}
	return nil
}

// ExportUsersXLSX renders the per-user stats as a spreadsheet for the
// admin download button.
func (s *AnalyticsService) ExportUsersXLSX() ([]byte, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Users"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"User ID", "Email", "Registered", "Habits Completed", "Days Active", "Streak", "Last Active"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("export header: %w", err)
		}
	}

	for rowIdx, u := range users {
		values := []interface{}{u.UserID, u.Email, u.RegisteredAt, u.TotalHabitsCompleted, u.TotalDaysActive, u.CurrentStreak, u.LastActiveDate}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("export row: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("export row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type userDocument struct {
	userID string
	state  state.AppState
}

func (s *AnalyticsService) loadAll() ([]userDocument, error) {
	var rows []db.UserProgress
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("scan user progress: %w", err)
	}

	docs := make([]userDocument, 0, len(rows))
	for _, row := range rows {
		decoded, err := decodeProgressRow(row)
		if err != nil || decoded == nil {
			// A corrupt document must not take down the whole scan.
			continue
		}
		docs = append(docs, userDocument{userID: row.UserID, state: *decoded})
	}
	return docs, nil
}
