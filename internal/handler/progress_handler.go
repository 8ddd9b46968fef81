package handler

import (
	"net/http"

	"github.com/amalanberkah/internal/habit"
	"github.com/amalanberkah/internal/state"
	"github.com/gin-gonic/gin"
)

// Habits returns the static catalog the checklist is rendered from.
func (a *API) Habits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"daily":            habit.Daily,
		"weekly":           habit.Weekly,
		"emergency":        habit.Emergency,
		"totalDailyPoints": habit.TotalDailyPoints(),
	})
}

// GetProgress returns the caller's document. A first-time user gets a
// synthesized state for today; a stale document is rolled over to today
// before it is returned.
func (a *API) GetProgress(c *gin.Context) {
	userID := currentUserID(c)

	st, err := a.currentState(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data")
		return
	}

	today := state.Today()
	if st == nil {
		fresh := state.NewAppState(today)
		st = &fresh
	} else if st.CurrentDate != today {
		st.CurrentDate = today
		if _, ok := st.Progress[today]; !ok {
			st.Progress[today] = state.NewDailyProgress(today)
		}
		a.autosave.Schedule(userID, *st)
	}

	a.respondProgress(c, userID, st)
}

// PutProgress replaces the caller's whole document and schedules the
// debounced write. Last write wins.
func (a *API) PutProgress(c *gin.Context) {
	userID := currentUserID(c)

	var st state.AppState
	if !bindJSON(c, &st, "Data tidak valid") {
		return
	}
	if st.CurrentDate == "" {
		st.CurrentDate = state.Today()
	}
	if st.Progress == nil {
		st.Progress = map[string]state.DailyProgress{}
	}

	a.autosave.Schedule(userID, st)
	a.respondProgress(c, userID, &st)
}

// ToggleHabit flips one habit on today's entry and schedules the write.
func (a *API) ToggleHabit(c *gin.Context) {
	userID := currentUserID(c)

	st, err := a.loadOrInit(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data")
		return
	}

	st.ToggleHabit(c.Param("id"))
	a.autosave.Schedule(userID, *st)
	a.respondProgress(c, userID, st)
}

// ToggleMuhasabah flips one reflection flag on today's entry.
func (a *API) ToggleMuhasabah(c *gin.Context) {
	userID := currentUserID(c)

	st, err := a.loadOrInit(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data")
		return
	}

	if !st.ToggleMuhasabah(c.Param("key")) {
		respondError(c, http.StatusBadRequest, "Pertanyaan muhasabah tidak dikenal")
		return
	}
	a.autosave.Schedule(userID, *st)
	a.respondProgress(c, userID, st)
}

// Stats returns the last seven recorded days reduced to point totals.
func (a *API) Stats(c *gin.Context) {
	userID := currentUserID(c)

	st, err := a.loadOrInit(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":                st.StatsWindow(7),
		"todayPoints":          st.PointsFor(st.CurrentDate),
		"completionPercentage": st.CompletionPercentage(),
	})
}

// currentState returns the freshest document for userID: a snapshot still
// queued in the autosaver wins over the persisted row, so every toggle of
// a burst composes on the previous one.
func (a *API) currentState(userID string) (*state.AppState, error) {
	if st, ok := a.autosave.Pending(userID); ok {
		return &st, nil
	}
	return a.progress.Load(userID)
}

func (a *API) loadOrInit(userID string) (*state.AppState, error) {
	st, err := a.currentState(userID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		fresh := state.NewAppState(state.Today())
		return &fresh, nil
	}
	today := state.Today()
	if st.CurrentDate != today {
		st.CurrentDate = today
		if _, ok := st.Progress[today]; !ok {
			st.Progress[today] = state.NewDailyProgress(today)
		}
	}
	return st, nil
}

func (a *API) respondProgress(c *gin.Context, userID string, st *state.AppState) {
	c.JSON(http.StatusOK, gin.H{
		"state":  st,
		"saving": a.autosave.Saving(userID),
	})
}
