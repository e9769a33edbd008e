// pkg/memcache/plan_history.go
package memcache

import (
	"sync"
	"time"

	"tripagent/internal/models/trip_models"
)

type PlanHistoryStore interface {
	Set(state *trip_models.PlanningState)

	// Get returns the plan for id if present and not expired.
	Get(id string) (*trip_models.PlanningState, bool)

	// Recent lists live plans, newest first. limit <= 0 means all.
	Recent(limit int) []*trip_models.PlanningState

	Len() int
}

type entry struct {
	state     *trip_models.PlanningState
	expiresAt time.Time
}

// PlanHistory keeps finished plans in memory. Entries expire after ttl and
// the oldest are evicted once maxEntries is exceeded. Zero disables either limit.
type PlanHistory struct {
	mu    sync.RWMutex
	data  map[string]entry
	order []string // insertion order, oldest first

	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewPlanHistory(ttl time.Duration, maxEntries int) *PlanHistory {
	return &PlanHistory{
		data:       make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *PlanHistory) Set(state *trip_models.PlanningState) {
	if state == nil || state.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[state.ID]; ok {
		s.removeFromOrder(state.ID)
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	s.data[state.ID] = entry{state: state, expiresAt: expiresAt}
	s.order = append(s.order, state.ID)

	s.evictLocked()
}

func (s *PlanHistory) Get(id string) (*trip_models.PlanningState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || s.expired(e) {
		return nil, false
	}
	return e.state, true
}

func (s *PlanHistory) Recent(limit int) []*trip_models.PlanningState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*trip_models.PlanningState, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		e := s.data[s.order[i]]
		if s.expired(e) {
			continue
		}
		out = append(out, e.state)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *PlanHistory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.data {
		if !s.expired(e) {
			n++
		}
	}
	return n
}

func (s *PlanHistory) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

// evictLocked drops expired entries, then the oldest ones over the cap.
func (s *PlanHistory) evictLocked() {
	kept := s.order[:0]
	for _, id := range s.order {
		if s.expired(s.data[id]) {
			delete(s.data, id) // cleanup expired
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept

	if s.maxEntries <= 0 {
		return
	}
	for len(s.order) > s.maxEntries {
		delete(s.data, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *PlanHistory) removeFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
