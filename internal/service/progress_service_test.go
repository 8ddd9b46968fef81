package service

import (
	"reflect"
	"testing"

	"github.com/amalanberkah/internal/db"
	"github.com/amalanberkah/internal/state"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.UserProgress{},
		&db.Partnership{},
		&db.Message{},
		&db.AppSetting{},
		&db.UsageSnapshot{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func createTestUser(t *testing.T, email string) db.User {
	t.Helper()
	hashed, err := db.HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := db.User{Email: email, Password: hashed, Role: db.RoleUser}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func TestProgressLoadMissingUser(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProgressService(db.DB)
	st, err := svc.Load("no-such-user")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if st != nil {
		t.Fatalf("expected nil state for missing user, got %#v", st)
	}
}

func TestProgressSaveAndLoadRoundtrip(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProgressService(db.DB)
	user := createTestUser(t, "roundtrip@example.com")

	st := state.NewAppState("2026-01-05")
	st.ToggleHabit("pagi-0")
	st.ToggleHabit("subuh-1")
	st.ToggleMuhasabah(state.MuhasabahDosaDigital)

	if err := svc.Save(user.ID, st); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := svc.Load(user.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected stored state")
	}
	if loaded.CurrentDate != "2026-01-05" {
		t.Fatalf("unexpected current date %q", loaded.CurrentDate)
	}
	day := loaded.Progress["2026-01-05"]
	if !reflect.DeepEqual(day.CompletedHabitIDs, []string{"pagi-0", "subuh-1"}) {
		t.Fatalf("unexpected completions %v", day.CompletedHabitIDs)
	}
	if !day.Muhasabah.DosaDigital {
		t.Fatal("expected dosaDigital to survive the roundtrip")
	}
}

func TestProgressSaveOverwritesWholeDocument(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProgressService(db.DB)
	user := createTestUser(t, "overwrite@example.com")

	first := state.NewAppState("2026-01-05")
	first.ToggleHabit("pagi-0")
	if err := svc.Save(user.ID, first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// Last write wins: the second document replaces the first entirely.
	second := state.NewAppState("2026-01-06")
	second.ToggleHabit("malam-1")
	if err := svc.Save(user.ID, second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := svc.Load(user.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.CurrentDate != "2026-01-06" {
		t.Fatalf("expected overwritten date, got %q", loaded.CurrentDate)
	}
	if _, ok := loaded.Progress["2026-01-05"]; ok {
		t.Fatal("expected first document to be gone")
	}

	var rows int64
	if err := db.DB.Model(&db.UserProgress{}).Where("user_id = ?", user.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single row per user, got %d", rows)
	}
}

func TestProgressLoadFillsEmptyDate(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProgressService(db.DB)
	user := createTestUser(t, "emptydate@example.com")

	row := db.UserProgress{UserID: user.ID, CurrentDateValue: "", Progress: "{}"}
	if err := db.DB.Create(&row).Error; err != nil {
		t.Fatalf("seed row: %v", err)
	}

	loaded, err := svc.Load(user.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.CurrentDate != state.Today() {
		t.Fatalf("expected today fallback, got %q", loaded.CurrentDate)
	}
}
