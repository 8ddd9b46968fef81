package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/state"
	"github.com/xuri/excelize/v2"
)

var analyticsNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func seedDocument(t *testing.T, progress *ProgressService, userID string, activeDates []string) {
	t.Helper()
	st := state.AppState{CurrentDate: analyticsNow.Format(state.DateLayout), Progress: map[string]state.DailyProgress{}}
	for _, date := range activeDates {
		day := state.NewDailyProgress(date)
		day.CompletedHabitIDs = []string{"pagi-0", "subuh-1"}
		st.Progress[date] = day
	}
	if err := progress.Save(userID, st); err != nil {
		t.Fatalf("seed progress for %s: %v", userID, err)
	}
}

func TestAdminStats(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	svc.SetNow(func() time.Time { return analyticsNow })
	progress := NewProgressService(db.DB)

	active := createTestUser(t, "active@example.com")
	weekly := createTestUser(t, "weekly@example.com")
	dormant := createTestUser(t, "dormant@example.com")

	// Active today and every day of the window.
	seedDocument(t, progress, active.ID, []string{
		"2026-01-04", "2026-01-05", "2026-01-06", "2026-01-07",
		"2026-01-08", "2026-01-09", "2026-01-10",
	})
	// Active once this week, not today.
	seedDocument(t, progress, weekly.ID, []string{"2026-01-06"})
	// Last active months ago.
	seedDocument(t, progress, dormant.ID, []string{"2025-10-01"})

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalUsers != 3 {
		t.Fatalf("expected 3 users, got %d", stats.TotalUsers)
	}
	if stats.ActiveUsersToday != 1 {
		t.Fatalf("expected 1 active today, got %d", stats.ActiveUsersToday)
	}
	if stats.ActiveUsersWeek != 2 {
		t.Fatalf("expected 2 active this week, got %d", stats.ActiveUsersWeek)
	}
	// 7 + 1 + 1 active days, 2 habits each.
	if stats.TotalHabitsCompleted != 18 {
		t.Fatalf("expected 18 habits completed, got %d", stats.TotalHabitsCompleted)
	}
	// Rates over the 7-day window: 100%, ~14.3%, 0% -> average 38.
	if stats.AverageCompletionRate != 38 {
		t.Fatalf("expected average rate 38, got %d", stats.AverageCompletionRate)
	}
}

func TestUserStatsAndStreak(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	svc.SetNow(func() time.Time { return analyticsNow })
	progress := NewProgressService(db.DB)

	streaky := createTestUser(t, "streaky@example.com")
	// Active yesterday and the two days before, quiet today: the streak
	// through yesterday still counts.
	seedDocument(t, progress, streaky.ID, []string{"2026-01-07", "2026-01-08", "2026-01-09"})

	broken := createTestUser(t, "broken@example.com")
	seedDocument(t, progress, broken.ID, []string{"2026-01-05", "2026-01-08"})

	users, err := svc.Users()
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(users))
	}

	byEmail := map[string]UserStats{}
	for _, row := range users {
		byEmail[row.Email] = row
	}

	s := byEmail["streaky@example.com"]
	if s.CurrentStreak != 3 {
		t.Fatalf("expected streak 3, got %d", s.CurrentStreak)
	}
	if s.TotalDaysActive != 3 || s.TotalHabitsCompleted != 6 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.LastActiveDate != "2026-01-09" {
		t.Fatalf("expected last active 2026-01-09, got %s", s.LastActiveDate)
	}

	b := byEmail["broken@example.com"]
	// 2026-01-09 is quiet, so the walk-back stops after the grace for today.
	if b.CurrentStreak != 0 {
		t.Fatalf("expected broken streak 0, got %d", b.CurrentStreak)
	}

	// Sorted by most recently active.
	if users[0].Email != "streaky@example.com" {
		t.Fatalf("expected streaky first, got %s", users[0].Email)
	}
}

func TestSnapshotPersistsAggregates(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	svc.SetNow(func() time.Time { return analyticsNow })
	progress := NewProgressService(db.DB)

	user := createTestUser(t, "snap@example.com")
	seedDocument(t, progress, user.ID, []string{"2026-01-10"})

	if err := svc.Snapshot(); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	var row db.UsageSnapshot
	if err := db.DB.First(&row).Error; err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if row.TotalUsers != 1 || row.ActiveToday != 1 {
		t.Fatalf("unexpected snapshot %+v", row)
	}
	if !row.TakenAt.Equal(analyticsNow.Truncate(time.Hour)) {
		t.Fatalf("expected taken_at truncated to hour, got %v", row.TakenAt)
	}
}

func TestExportUsersXLSX(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	svc.SetNow(func() time.Time { return analyticsNow })
	progress := NewProgressService(db.DB)

	user := createTestUser(t, "export@example.com")
	seedDocument(t, progress, user.ID, []string{"2026-01-09", "2026-01-10"})

	data, err := svc.ExportUsersXLSX()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Users")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if rows[0][1] != "Email" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "export@example.com" {
		t.Fatalf("unexpected data row: %v", rows[1])
	}
}

func TestStatsSkipsCorruptDocuments(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAnalyticsService(db.DB)
	svc.SetNow(func() time.Time { return analyticsNow })
	progress := NewProgressService(db.DB)

	good := createTestUser(t, "good@example.com")
	seedDocument(t, progress, good.ID, []string{"2026-01-10"})

	bad := createTestUser(t, "bad@example.com")
	row := db.UserProgress{UserID: bad.ID, CurrentDateValue: "2026-01-10", Progress: "{not json"}
	if err := db.DB.Create(&row).Error; err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalUsers != 1 {
		t.Fatalf("expected corrupt document skipped, got %d users", stats.TotalUsers)
	}
}
