package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"thforest/internal/config"
	"thforest/internal/foliage"
	"thforest/internal/profiling"
	"thforest/internal/scene"
	"thforest/internal/streaming"
	"thforest/pkg/spawndata"
)

// SceneResolver finds existing nodes by slash separated name path.
type SceneResolver interface {
	FindByPath(path string) (*scene.Node, error)
}

// RegionLocator finds sectors by name.
type RegionLocator interface {
	Sector(name string) (*scene.Sector, bool)
}

// DatasetSource reads placement records by dataset name.
type DatasetSource interface {
	Load(name string) ([]spawndata.Record, error)
}

// Deps are the host collaborators a controller works against.
type Deps struct {
	Scene    SceneResolver
	Regions  RegionLocator
	Loader   streaming.PackageLoader
	Datasets DatasetSource
	// Rand drives clone jitter and scale. When nil a source is seeded from
	// Settings.Seed, or from the clock if that is zero.
	Rand *rand.Rand
}

// Controller coordinates spawn state for one loaded world. Create one per
// world and drop it on unload; it holds no global state.
type Controller struct {
	mu       sync.Mutex
	deps     Deps
	settings config.Settings
	trigger  *streaming.Trigger
	rng      *rand.Rand

	state      State
	generation int
	deadline   time.Time
	records    []spawndata.Record
	result     *foliage.Result
	err        error
}

func NewController(settings config.Settings, deps Deps) *Controller {
	rng := deps.Rand
	if rng == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &Controller{
		deps:     deps,
		settings: settings,
		trigger:  streaming.NewTrigger(deps.Loader),
		rng:      rng,
		state:    StateArmed,
	}
}

// Bind re-applies densities whenever the store changes. The returned func
// unsubscribes.
func (c *Controller) Bind(store *config.Store) func() {
	return store.Subscribe(c.Configure)
}

// OnSceneLoaded starts a new spawn pass when the world scene loads. Any
// previous pass, finished or pending, is torn down first; a pending one is
// never resumed. Other scenes are ignored.
func (c *Controller) OnSceneLoaded(name string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name != c.settings.WorldScene {
		return
	}

	c.teardownLocked()
	c.generation++
	profiling.Reset()

	stop := profiling.Track("spawndata.Load")
	records, err := c.deps.Datasets.Load(c.settings.Dataset)
	stop()
	if err != nil {
		c.failLocked(fmt.Errorf("%w: %w", foliage.ErrMissingResource, err))
		return
	}

	c.records = records
	c.deadline = now.Add(c.settings.SpawnDelay)
	c.state = StateWaitingForDelay
}

// Tick advances a waiting pass once its delay has elapsed. It reports
// whether a spawn was attempted.
func (c *Controller) Tick(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateWaitingForDelay || now.Before(c.deadline) {
		return false
	}
	c.spawnLocked()
	return true
}

// spawnLocked runs one complete pass. Every lookup is made fresh so that a
// reload between passes never leaves stale references behind.
func (c *Controller) spawnLocked() {
	c.state = StateSpawning
	records := c.records
	c.records = nil
	s := c.settings

	origin, err := c.deps.Scene.FindByPath(s.Anchor)
	if err != nil {
		c.failLocked(fmt.Errorf("anchor %s: %w: %w", s.Anchor, foliage.ErrMissingResource, err))
		return
	}
	log.Printf("Located %s successfully", origin.Name)

	treeTpl, err := c.deps.Scene.FindByPath(s.TreeTemplate)
	if err != nil {
		c.failLocked(fmt.Errorf("tree template: %w: %w", foliage.ErrMissingResource, err))
		return
	}
	groundTpl, err := c.deps.Scene.FindByPath(s.GroundcoverTemplate)
	if err != nil {
		c.failLocked(fmt.Errorf("groundcover template: %w: %w", foliage.ErrMissingResource, err))
		return
	}

	home, ok := c.deps.Regions.Sector(s.HomeRegion)
	if !ok {
		c.failLocked(fmt.Errorf("home region %s: %w", s.HomeRegion, foliage.ErrMissingResource))
		return
	}
	source, ok := c.deps.Regions.Sector(s.SourceRegion)
	if !ok {
		c.failLocked(fmt.Errorf("source region %s: %w", s.SourceRegion, foliage.ErrMissingResource))
		return
	}

	res, err := foliage.Spawn(records, foliage.Templates{Tree: treeTpl, Groundcover: groundTpl}, origin, home.Node, c.rng)
	if err != nil {
		c.failLocked(err)
		return
	}
	c.result = res
	log.Printf("All %d trees and %d groundcover patches have been spawned", len(res.Trees), len(res.Groundcover))

	c.applyDensitiesLocked()
	c.trigger.Arm(home, source, res.Packages)

	c.state = StateDone
	c.err = nil
	log.Printf("Spawn pass %d done in %s", c.generation, profiling.TopN(3))
}

// Configure stores new settings and re-applies both densities. An unknown
// descriptor only leaves its own set untouched.
func (c *Controller) Configure(s config.Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = s
	c.applyDensitiesLocked()
}

func (c *Controller) applyDensitiesLocked() {
	if c.result == nil {
		return
	}
	applyDensity("tree", c.result.Trees, c.settings.TreeDensity)
	applyDensity("groundcover", c.result.Groundcover, c.settings.GroundcoverDensity)
}

func applyDensity(kind string, set []*scene.Node, descriptor string) {
	visible, err := foliage.ApplyNamed(set, descriptor)
	if errors.Is(err, foliage.ErrUnknownDensity) {
		log.Printf("Warning: unknown %s density setting %q, keeping current visibility", kind, descriptor)
		return
	}
	log.Printf("Updated %s detail mode to %s (%d/%d visible)", kind, descriptor, visible, len(set))
}

// Unload removes everything the controller spawned and returns to Armed.
func (c *Controller) Unload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked()
	c.state = StateArmed
}

func (c *Controller) teardownLocked() {
	c.trigger.Disarm()
	c.result.Destroy()
	c.result = nil
	c.records = nil
	c.err = nil
}

func (c *Controller) failLocked(err error) {
	log.Printf("Spawn pass %d failed: %v", c.generation, err)
	c.teardownLocked()
	c.err = err
	c.state = StateFailed
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the reason of the last failed pass.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Generation counts world loads handled so far.
func (c *Controller) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Deadline is when a waiting pass becomes due.
func (c *Controller) Deadline() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deadline
}

func (c *Controller) Trees() []*scene.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return nil
	}
	return append([]*scene.Node(nil), c.result.Trees...)
}

func (c *Controller) Groundcover() []*scene.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return nil
	}
	return append([]*scene.Node(nil), c.result.Groundcover...)
}

// Packages returns the asset packages the streaming trigger keeps loaded.
func (c *Controller) Packages() []string {
	return c.trigger.Packages()
}
