package service

import (
	"log"
	"sync"
	"time"

	"github.com/amalanberkah/internal/metrics"
	"github.com/amalanberkah/internal/realtime"
	"github.com/amalanberkah/internal/state"
)

// DefaultAutosaveDelay is the idle window after the last mutation before a
// document is persisted.
const DefaultAutosaveDelay = time.Second

// Autosaver debounces document writes per user: each Schedule cancels any
// pending write and rearms the timer, so only the final state of a burst
// reaches storage. A failed upsert is logged and dropped; there is no
// retry and no queue.
type Autosaver struct {
	delay time.Duration
	save  func(userID string, st state.AppState) error
	hub   *realtime.Hub

	mu      sync.Mutex
	pending map[string]*pendingSave
}

type pendingSave struct {
	timer    *time.Timer
	state    state.AppState
	seq      int
	inFlight bool
}

// NewAutosaver wires the debounced writer to the progress store and the
// realtime hub. A non-positive delay falls back to the default.
func NewAutosaver(progress *ProgressService, hub *realtime.Hub, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{
		delay:   delay,
		save:    progress.Save,
		hub:     hub,
		pending: make(map[string]*pendingSave),
	}
}

// SetSaveFunc replaces the persistence call, mainly for tests.
func (a *Autosaver) SetSaveFunc(save func(userID string, st state.AppState) error) {
	a.mu.Lock()
	a.save = save
	a.mu.Unlock()
}

// Schedule records st as the latest state for userID and (re)arms the
// debounce timer. The snapshot is cloned so later mutations by the caller
// cannot leak into an in-flight write.
func (a *Autosaver) Schedule(userID string, st state.AppState) {
	snapshot := st.Clone()

	a.mu.Lock()
	defer a.mu.Unlock()

	if p, ok := a.pending[userID]; ok {
		p.timer.Stop()
		p.state = snapshot
		p.seq++
		p.inFlight = false
		p.timer.Reset(a.delay)
		return
	}

	p := &pendingSave{state: snapshot}
	p.timer = time.AfterFunc(a.delay, func() { a.fire(userID) })
	a.pending[userID] = p
}

// Saving reports whether a write is scheduled or in flight for userID,
// driving the client's "saving" indicator. The entry stays in the map for
// the whole schedule-to-completion span.
func (a *Autosaver) Saving(userID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.pending[userID]
	return ok
}

// Pending returns a copy of the queued snapshot for userID, if any. Reads
// inside the debounce window must prefer it over the persisted row, or a
// second mutation in a burst would start from stale data.
func (a *Autosaver) Pending(userID string) (state.AppState, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.pending[userID]
	if !ok {
		return state.AppState{}, false
	}
	return p.state.Clone(), true
}

// Flush persists any pending state for userID immediately. Used on logout
// so the session never discards a scheduled write.
func (a *Autosaver) Flush(userID string) {
	a.mu.Lock()
	p, ok := a.pending[userID]
	if ok {
		p.timer.Stop()
	}
	a.mu.Unlock()

	if ok {
		a.fire(userID)
	}
}

// Close cancels every pending timer and persists their states.
func (a *Autosaver) Close() {
	a.mu.Lock()
	users := make([]string, 0, len(a.pending))
	for userID, p := range a.pending {
		p.timer.Stop()
		users = append(users, userID)
	}
	a.mu.Unlock()

	for _, userID := range users {
		a.fire(userID)
	}
}

func (a *Autosaver) fire(userID string) {
	a.mu.Lock()
	p, ok := a.pending[userID]
	if !ok || p.inFlight {
		a.mu.Unlock()
		return
	}
	p.inFlight = true
	seq := p.seq
	snapshot := p.state
	save := a.save
	a.mu.Unlock()

	err := save(userID, snapshot)

	// Drop the entry only if no reschedule happened during the write; a
	// Schedule racing the save bumps seq and keeps its newer snapshot.
	a.mu.Lock()
	if current, stillThere := a.pending[userID]; stillThere && current == p && current.seq == seq && current.inFlight {
		delete(a.pending, userID)
	}
	a.mu.Unlock()

	if err != nil {
		metrics.ProgressSaveFailures.Inc()
		log.Printf("autosave failed for user %s: %v", userID, err)
		return
	}

	metrics.ProgressSaves.Inc()
	if a.hub != nil {
		a.hub.Publish(userID, realtime.EventProgress)
	}
}
