// Package state models the per-user progress document and the pure
// transitions the client applies to it. Nothing here touches storage:
// persistence and realtime overwrite both operate on whole AppState values.
package state

import (
	"math"
	"sort"
	"time"

	"github.com/amalanberkah/internal/habit"
)

// DateLayout is the zero-padded ISO day key used throughout the document.
// Lexical order of keys equals chronological order.
const DateLayout = "2006-01-02"

// Muhasabah keys accepted by ToggleMuhasabah.
const (
	MuhasabahJujur       = "jujur"
	MuhasabahFollowUp    = "followUp"
	MuhasabahHakOrang    = "hakOrang"
	MuhasabahDosaDigital = "dosaDigital"
)

// Muhasabah is the four-question end-of-day reflection checklist.
type Muhasabah struct {
	Jujur       bool `json:"jujur"`
	FollowUp    bool `json:"followUp"`
	HakOrang    bool `json:"hakOrang"`
	DosaDigital bool `json:"dosaDigital"`
}

// DailyProgress is one calendar day of the document.
type DailyProgress struct {
	Date              string    `json:"date"`
	CompletedHabitIDs []string  `json:"completedHabitIds"`
	Muhasabah         Muhasabah `json:"muhasabah"`
}

// NewDailyProgress is the single factory for a fresh day entry. Every code
// path that may find a day missing goes through it.
func NewDailyProgress(date string) DailyProgress {
	return DailyProgress{
		Date:              date,
		CompletedHabitIDs: []string{},
		Muhasabah: Muhasabah{
			Jujur:       true,
			FollowUp:    true,
			HakOrang:    true,
			DosaDigital: false,
		},
	}
}

// AppState is the whole per-user document: the date the client treats as
// today plus every recorded day keyed by DateLayout.
type AppState struct {
	CurrentDate string                   `json:"currentDate"`
	Progress    map[string]DailyProgress `json:"progress"`
}

// NewAppState builds the optimistic initial state for date: a single
// synthetic entry with nothing completed.
func NewAppState(date string) AppState {
	return AppState{
		CurrentDate: date,
		Progress:    map[string]DailyProgress{date: NewDailyProgress(date)},
	}
}

// Today formats the current wall-clock day in the document layout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// day returns the entry for the current date, synthesizing a default when
// the document has none yet.
func (s *AppState) day() DailyProgress {
	if s.Progress == nil {
		s.Progress = map[string]DailyProgress{}
	}
	if d, ok := s.Progress[s.CurrentDate]; ok {
		return d
	}
	return NewDailyProgress(s.CurrentDate)
}

// ToggleHabit adds id to today's completed set, or removes it when already
// present. The id is not validated against the catalog.
func (s *AppState) ToggleHabit(id string) {
	day := s.day()

	kept := make([]string, 0, len(day.CompletedHabitIDs)+1)
	removed := false
	for _, existing := range day.CompletedHabitIDs {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, id)
	}

	day.CompletedHabitIDs = kept
	s.Progress[s.CurrentDate] = day
}

// ToggleMuhasabah flips one reflection flag on today's entry. Unlike
// ToggleHabit it does not synthesize a missing day: toggling a reflection
// before the day exists is a no-op, and an unknown key reports false.
func (s *AppState) ToggleMuhasabah(key string) bool {
	day, ok := s.Progress[s.CurrentDate]
	if !ok {
		return false
	}

	switch key {
	case MuhasabahJujur:
		day.Muhasabah.Jujur = !day.Muhasabah.Jujur
	case MuhasabahFollowUp:
		day.Muhasabah.FollowUp = !day.Muhasabah.FollowUp
	case MuhasabahHakOrang:
		day.Muhasabah.HakOrang = !day.Muhasabah.HakOrang
	case MuhasabahDosaDigital:
		day.Muhasabah.DosaDigital = !day.Muhasabah.DosaDigital
	default:
		return false
	}

	s.Progress[s.CurrentDate] = day
	return true
}

// PointsFor sums the daily-catalog points of the habits completed on date.
// Ids outside the daily catalog contribute nothing.
func (s AppState) PointsFor(date string) int {
	day, ok := s.Progress[date]
	if !ok {
		return 0
	}

	points := habit.DailyPoints()
	total := 0
	for _, id := range day.CompletedHabitIDs {
		total += points[id]
	}
	return total
}

// CompletionPercentage is today's score as a rounded percentage of the
// total daily points. Always within [0, 100] for catalog-only completions.
func (s AppState) CompletionPercentage() int {
	total := habit.TotalDailyPoints()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.PointsFor(s.CurrentDate)) / float64(total) * 100))
}

// StatEntry is one bar of the history chart.
type StatEntry struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// StatsWindow returns the last n recorded days in ascending date order,
// reduced to their point totals. Fewer than n days yields all of them.
func (s AppState) StatsWindow(n int) []StatEntry {
	dates := make([]string, 0, len(s.Progress))
	for date := range s.Progress {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	entries := make([]StatEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, StatEntry{Date: date, Points: s.PointsFor(date)})
	}
	return entries
}

// Clone deep-copies the document so a snapshot handed to the autosaver
// cannot be mutated by later toggles.
func (s AppState) Clone() AppState {
	copied := AppState{CurrentDate: s.CurrentDate, Progress: make(map[string]DailyProgress, len(s.Progress))}
	for date, day := range s.Progress {
		ids := make([]string, len(day.CompletedHabitIDs))
		copy(ids, day.CompletedHabitIDs)
		day.CompletedHabitIDs = ids
		copied.Progress[date] = day
	}
	return copied
}
