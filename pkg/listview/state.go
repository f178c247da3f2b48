package listview

import (
	"fmt"
	"sync"
)

// State remembers the current page of every open list. A list is identified by a key
// (owner and list name); the fingerprint captures its filters and sort. Any change of the
// fingerprint sends the list back to page 1.
type State struct {
	mu    sync.Mutex
	lists map[string]pageState
}

type pageState struct {
	fingerprint string
	page        int
}

// NewState makes an empty state registry
func NewState() *State {
	return &State{lists: map[string]pageState{}}
}

// Fingerprint builds a comparable identity of filter and sort values
func Fingerprint(parts ...any) string {
	return fmt.Sprintf("%#v", parts)
}

// Page resolves the page to show. With an unchanged fingerprint the requested page wins,
// or the remembered page when none is requested (requested < 1). A changed fingerprint resets to 1.
// The first request of a list takes the requested page as is.
func (s *State) Page(key, fingerprint string, requested int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.lists[key]
	if !ok {
		page := max(1, requested)
		s.lists[key] = pageState{fingerprint: fingerprint, page: page}
		return page
	}
	if prev.fingerprint != fingerprint {
		s.lists[key] = pageState{fingerprint: fingerprint, page: 1}
		return 1
	}
	if requested < 1 {
		return prev.page
	}
	return requested
}

// Settle records the clamped page actually shown
func (s *State) Settle(key, fingerprint string, page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = pageState{fingerprint: fingerprint, page: page}
}
