package config

import (
	"sort"
	"sync"
)

// Store holds the live settings and tells subscribers about every change.
type Store struct {
	mu      sync.RWMutex
	current Settings

	subMu  sync.Mutex
	subs   map[int]func(Settings)
	nextID int
}

func NewStore(initial Settings) *Store {
	return &Store{
		current: initial,
		subs:    make(map[int]func(Settings)),
	}
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the settings and notifies subscribers synchronously.
func (s *Store) Set(next Settings) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	s.notify(next)
}

// SetDensity changes only the two density descriptors.
func (s *Store) SetDensity(tree, groundcover string) {
	s.mu.Lock()
	s.current.TreeDensity = tree
	s.current.GroundcoverDensity = groundcover
	next := s.current
	s.mu.Unlock()
	s.notify(next)
}

// Reload reads path and, if it parses, replaces the settings.
func (s *Store) Reload(path string) error {
	next, err := Load(path)
	if err != nil {
		return err
	}
	s.Set(next)
	return nil
}

// Subscribe registers fn for change notifications. The returned func
// unsubscribes.
func (s *Store) Subscribe(fn func(Settings)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(next Settings) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	fns := make([]func(Settings), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
