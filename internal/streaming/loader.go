package streaming

import "sync"

// PackageLoader requests that an asset package be made resident. Calls are
// fire and forget.
type PackageLoader interface {
	LoadPackage(id string)
}

// LoaderFunc adapts a function to PackageLoader.
type LoaderFunc func(id string)

func (f LoaderFunc) LoadPackage(id string) { f(id) }

// RecordingLoader keeps every request in order. It treats repeated requests
// for a resident package as no-ops, like the host loader does.
type RecordingLoader struct {
	mu       sync.Mutex
	requests []string
	resident map[string]bool
}

func NewRecordingLoader() *RecordingLoader {
	return &RecordingLoader{resident: make(map[string]bool)}
}

func (l *RecordingLoader) LoadPackage(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, id)
	l.resident[id] = true
}

// Evict marks a package as no longer resident, as the host streaming system
// does when the player is far away.
func (l *RecordingLoader) Evict(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.resident, id)
}

func (l *RecordingLoader) Resident(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resident[id]
}

// Requests returns a copy of all load requests so far.
func (l *RecordingLoader) Requests() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.requests...)
}
