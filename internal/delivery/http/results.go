package http

import (
	"sync"

	"github.com/greenscan/backend/internal/usecase"
)

// ResultStore holds the most recent scan-triggered verdict. There is no
// history: a superseded result, even one that arrives late, simply
// overwrites the slot.
type ResultStore struct {
	mu     sync.RWMutex
	view   usecase.ViewModel
	loaded bool
}

// NewResultStore creates an empty result store
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Put replaces the stored result.
func (s *ResultStore) Put(view usecase.ViewModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	s.loaded = true
}

// Latest returns the stored result, or false if nothing has been scanned.
func (s *ResultStore) Latest() (usecase.ViewModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view, s.loaded
}
