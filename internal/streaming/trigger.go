package streaming

import (
	"log"
	"sync"

	"thforest/internal/scene"
)

// Region is the occupancy surface of a sector as seen by the trigger.
type Region interface {
	ContainsOccupant(o scene.Occupant) bool
	OnOccupantEnter(fn func(scene.Occupant)) func()
	OnOccupantExit(fn func(scene.Occupant)) func()
}

// Trigger re-requests template asset packages when the player arrives in the
// home region or leaves the source region, the two moments the host may have
// evicted them.
type Trigger struct {
	loader PackageLoader

	mu       sync.Mutex
	home     Region
	source   Region
	packages []string
	unsubs   []func()
}

func NewTrigger(loader PackageLoader) *Trigger {
	return &Trigger{loader: loader}
}

// Arm subscribes to home entry and source exit and loads every package once.
// Arming again replaces the previous subscriptions.
func (t *Trigger) Arm(home, source Region, packages []string) {
	t.Disarm()

	t.mu.Lock()
	t.home = home
	t.source = source
	t.packages = append([]string(nil), packages...)
	t.unsubs = []func(){
		home.OnOccupantEnter(t.onEnterHome),
		source.OnOccupantExit(t.onLeaveSource),
	}
	t.mu.Unlock()

	t.ReloadAll()
}

// Disarm drops the region subscriptions and forgets the packages.
func (t *Trigger) Disarm() {
	t.mu.Lock()
	unsubs := t.unsubs
	t.unsubs = nil
	t.home, t.source = nil, nil
	t.packages = nil
	t.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Armed reports whether the trigger currently holds subscriptions.
func (t *Trigger) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unsubs != nil
}

// Packages returns the identifiers the trigger reloads.
func (t *Trigger) Packages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.packages...)
}

// ReloadAll issues a load request for every known package. Residency is not
// tracked; the loader is expected to ignore packages it already holds.
func (t *Trigger) ReloadAll() {
	for _, id := range t.Packages() {
		t.loader.LoadPackage(id)
	}
}

func (t *Trigger) onEnterHome(o scene.Occupant) {
	t.mu.Lock()
	home := t.home
	t.mu.Unlock()

	if home == nil || !home.ContainsOccupant(scene.Player) {
		return
	}
	log.Printf("Player entered home region (detected %v), reloading asset packages", o)
	t.ReloadAll()
}

func (t *Trigger) onLeaveSource(o scene.Occupant) {
	t.mu.Lock()
	source := t.source
	t.mu.Unlock()

	if source == nil || source.ContainsOccupant(scene.Player) {
		return
	}
	log.Printf("Player left source region (detected %v), reloading asset packages", o)
	t.ReloadAll()
}
