package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amalanberkah/internal/realtime"
	"github.com/amalanberkah/internal/state"
)

type saveRecorder struct {
	mu     sync.Mutex
	calls  int
	states []state.AppState
	err    error
}

func (r *saveRecorder) save(userID string, st state.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.states = append(r.states, st)
	return r.err
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *saveRecorder) last() (state.AppState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return state.AppState{}, false
	}
	return r.states[len(r.states)-1], true
}

func newTestAutosaver(delay time.Duration) (*Autosaver, *saveRecorder) {
	recorder := &saveRecorder{}
	saver := NewAutosaver(NewProgressService(nil), realtime.NewHub(), delay)
	saver.SetSaveFunc(recorder.save)
	return saver, recorder
}

func TestAutosaveDebouncesBurst(t *testing.T) {
	saver, recorder := newTestAutosaver(30 * time.Millisecond)
	defer saver.Close()

	st := state.NewAppState("2026-01-05")
	for _, id := range []string{"pagi-0", "pagi-1", "subuh-1", "subuh-2", "dhuha-1"} {
		st.ToggleHabit(id)
		saver.Schedule("user-a", st)
	}

	if !saver.Saving("user-a") {
		t.Fatal("expected a pending save during the burst")
	}

	time.Sleep(150 * time.Millisecond)

	if got := recorder.count(); got != 1 {
		t.Fatalf("expected exactly one write for the burst, got %d", got)
	}
	saved, ok := recorder.last()
	if !ok {
		t.Fatal("expected a recorded state")
	}
	if got := len(saved.Progress["2026-01-05"].CompletedHabitIDs); got != 5 {
		t.Fatalf("expected final state with 5 completions, got %d", got)
	}
	if saver.Saving("user-a") {
		t.Fatal("expected saving indicator to clear after the write")
	}
}

func TestAutosaveSnapshotIsolation(t *testing.T) {
	saver, recorder := newTestAutosaver(20 * time.Millisecond)
	defer saver.Close()

	st := state.NewAppState("2026-01-05")
	st.ToggleHabit("pagi-0")
	saver.Schedule("user-a", st)

	// Mutations after Schedule must not leak into the queued snapshot.
	st.ToggleHabit("subuh-1")

	time.Sleep(100 * time.Millisecond)

	saved, ok := recorder.last()
	if !ok {
		t.Fatal("expected a recorded state")
	}
	if got := saved.Progress["2026-01-05"].CompletedHabitIDs; len(got) != 1 || got[0] != "pagi-0" {
		t.Fatalf("snapshot leaked later mutations: %v", got)
	}
}

func TestAutosavePendingSnapshot(t *testing.T) {
	saver, _ := newTestAutosaver(time.Hour)
	defer saver.Close()

	if _, ok := saver.Pending("user-a"); ok {
		t.Fatal("expected no pending snapshot before any schedule")
	}

	st := state.NewAppState("2026-01-05")
	st.ToggleHabit("pagi-0")
	saver.Schedule("user-a", st)

	pending, ok := saver.Pending("user-a")
	if !ok {
		t.Fatal("expected pending snapshot inside the window")
	}
	got := pending.Progress["2026-01-05"].CompletedHabitIDs
	if len(got) != 1 || got[0] != "pagi-0" {
		t.Fatalf("unexpected pending completions %v", got)
	}

	// The returned copy is isolated from the queued snapshot.
	pending.ToggleHabit("subuh-1")
	again, _ := saver.Pending("user-a")
	if len(again.Progress["2026-01-05"].CompletedHabitIDs) != 1 {
		t.Fatal("mutating the returned copy leaked into the queue")
	}

	saver.Flush("user-a")
	if _, ok := saver.Pending("user-a"); ok {
		t.Fatal("expected no pending snapshot after flush")
	}
}

func TestAutosaveSavingHeldWhileWriteInFlight(t *testing.T) {
	saver, _ := newTestAutosaver(10 * time.Millisecond)
	defer saver.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	saver.SetSaveFunc(func(string, state.AppState) error {
		close(started)
		<-release
		return nil
	})

	saver.Schedule("user-a", state.NewAppState("2026-01-05"))

	<-started
	if !saver.Saving("user-a") {
		t.Fatal("expected saving indicator while the write is in flight")
	}
	close(release)

	deadline := time.Now().Add(time.Second)
	for saver.Saving("user-a") {
		if time.Now().After(deadline) {
			t.Fatal("saving indicator never cleared after the write")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAutosaveFlush(t *testing.T) {
	saver, recorder := newTestAutosaver(time.Hour)
	defer saver.Close()

	saver.Schedule("user-a", state.NewAppState("2026-01-05"))
	saver.Flush("user-a")

	if got := recorder.count(); got != 1 {
		t.Fatalf("expected flush to write immediately, got %d calls", got)
	}
	if saver.Saving("user-a") {
		t.Fatal("expected no pending save after flush")
	}

	// Flushing with nothing pending is a no-op.
	saver.Flush("user-a")
	if got := recorder.count(); got != 1 {
		t.Fatalf("expected no extra write, got %d calls", got)
	}
}

func TestAutosaveDropsFailedWrite(t *testing.T) {
	saver, recorder := newTestAutosaver(time.Hour)
	defer saver.Close()
	recorder.err = errors.New("disk full")

	saver.Schedule("user-a", state.NewAppState("2026-01-05"))
	saver.Flush("user-a")

	if got := recorder.count(); got != 1 {
		t.Fatalf("expected one attempt, got %d", got)
	}
	// No retry: the pending entry is gone even though the write failed.
	if saver.Saving("user-a") {
		t.Fatal("expected failed write to be dropped, not retried")
	}
}

func TestAutosaveCloseFlushesAllUsers(t *testing.T) {
	saver, recorder := newTestAutosaver(time.Hour)

	saver.Schedule("user-a", state.NewAppState("2026-01-05"))
	saver.Schedule("user-b", state.NewAppState("2026-01-05"))
	saver.Close()

	if got := recorder.count(); got != 2 {
		t.Fatalf("expected both pending states written on close, got %d", got)
	}
}

func TestAutosavePublishesProgressEvent(t *testing.T) {
	hub := realtime.NewHub()
	saver := NewAutosaver(NewProgressService(nil), hub, time.Hour)
	defer saver.Close()
	saver.SetSaveFunc(func(string, state.AppState) error { return nil })

	events, cancel := hub.Subscribe("user-a")
	defer cancel()

	saver.Schedule("user-a", state.NewAppState("2026-01-05"))
	saver.Flush("user-a")

	select {
	case event := <-events:
		if event.Kind != realtime.EventProgress {
			t.Fatalf("unexpected event %q", event.Kind)
		}
	default:
		t.Fatal("expected a progress event after the write")
	}
}
