// service/booking/intervalStore.go
package booking

import (
	"sync"
	"time"

	"equiploan/model"
)

type span struct {
	item  string
	start time.Time
	end   time.Time
}

// overlapsSpan is the one overlap predicate in the system. Windows are
// half-open [start, end): adjacent windows sharing an endpoint do not conflict.
func (s span) overlaps(start, end time.Time) bool {
	return s.start.Before(end) && start.Before(s.end)
}

// IntervalStore indexes the live ({pending, lent}) reservation windows per
// item and is the single source of truth for overlap queries. Reservations in
// terminal states are never present; their audit rows live only in storage.
type IntervalStore struct {
	mu     sync.RWMutex
	byItem map[string]map[string]span // item name -> reservation id -> window
	byID   map[string]string          // reservation id -> item name
}

func NewIntervalStore() *IntervalStore {
	return &IntervalStore{
		byItem: make(map[string]map[string]span),
		byID:   make(map[string]string),
	}
}

// Add registers a live window. Callers must have checked Overlaps first;
// Add itself never fails.
func (s *IntervalStore) Add(item string, start, end time.Time, reservationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.byItem[item]
	if m == nil {
		m = make(map[string]span)
		s.byItem[item] = m
	}
	m[reservationID] = span{item: item, start: start, end: end}
	s.byID[reservationID] = item
}

// Remove frees a reservation's window. Unknown ids are a no-op, so terminal
// transitions can call it unconditionally.
func (s *IntervalStore) Remove(reservationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[reservationID]
	if !ok {
		return
	}
	delete(s.byID, reservationID)
	if m := s.byItem[item]; m != nil {
		delete(m, reservationID)
		if len(m) == 0 {
			delete(s.byItem, item)
		}
	}
}

// Overlaps reports whether any live window on item conflicts with [start, end).
func (s *IntervalStore) Overlaps(item string, start, end time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.byItem[item] {
		if sp.overlaps(start, end) {
			return true
		}
	}
	return false
}

// FreeItems filters items down to those with no live window conflicting
// with [start, end).
func (s *IntervalStore) FreeItems(items []model.Item, start, end time.Time) []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		free := true
		for _, sp := range s.byItem[it.Name] {
			if sp.overlaps(start, end) {
				free = false
				break
			}
		}
		if free {
			out = append(out, it)
		}
	}
	return out
}
