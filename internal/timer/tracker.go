// Package timer holds in-memory start/stop session state. Each goal is an
// independent idle/running state machine keyed in a single map, and stopping
// one session never affects the others.
package timer

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"
	"time"
)

// Tracker maps goal ids to their running session's start timestamp.
//
// The TUI drives the tracker from its update loop, but bubbletea commands
// run on their own goroutines, so access is guarded.
type Tracker struct {
	mu     sync.Mutex
	active map[int]int64 // goal id -> start, ms epoch
	now    func() time.Time
}

// New creates an empty tracker using the wall clock.
func New() *Tracker {
	return NewWithClock(time.Now)
}

// NewWithClock creates a tracker with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		active: make(map[int]int64),
		now:    now,
	}
}

// Start transitions a goal from idle to running. Starting an already-running
// goal is a no-op rather than an overwrite of the start timestamp.
func (t *Tracker) Start(goalID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, running := t.active[goalID]; running {
		return
	}
	t.active[goalID] = t.now().UnixMilli()
}

// Stop transitions a goal back to idle and returns the session bounds. A
// goal that was not running, or a session whose measured duration is not
// positive (clock anomaly), yields ok=false and produces no entry.
func (t *Tracker) Stop(goalID int) (startMs, endMs int64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	start, running := t.active[goalID]
	if !running {
		return 0, 0, false
	}
	delete(t.active, goalID)
	end := t.now().UnixMilli()
	if end-start <= 0 {
		return 0, 0, false
	}
	return start, end, true
}

// Elapsed returns the running session's age in milliseconds, or 0 when idle.
// It is derived from the clock on every call, never stored.
func (t *Tracker) Elapsed(goalID int) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	start, running := t.active[goalID]
	if !running {
		return 0
	}
	return t.now().UnixMilli() - start
}

// Running reports whether the goal has an active session.
func (t *Tracker) Running(goalID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, running := t.active[goalID]
	return running
}

// ActiveCount returns the number of running sessions. The display tick runs
// only while this is non-zero.
func (t *Tracker) ActiveCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// ActiveGoals returns the ids of running goals in ascending order.
func (t *Tracker) ActiveGoals() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int, 0, len(t.active))
	for id := range t.active {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Snapshot serializes the active session map so CLI invocations can carry
// running timers across processes.
func (t *Tracker) Snapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := make(map[string]int64, len(t.active))
	for id, start := range t.active {
		m[strconv.Itoa(id)] = start
	}
	return json.Marshal(m)
}

// Restore replaces the session map from a snapshot. Unparseable snapshots
// leave the tracker empty.
func (t *Tracker) Restore(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = make(map[int]int64)
	if len(data) == 0 {
		return
	}
	var m map[string]int64
	if err := json.Unmarshal(data, &m); err != nil {
		return
	}
	for k, start := range m {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		t.active[id] = start
	}
}

// DropGoal discards any session for a deleted goal.
func (t *Tracker) DropGoal(goalID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, goalID)
}

// Reset discards every running session.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = make(map[int]int64)
}
