package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/status"
)

// ResourceStore is a type-keyed container for singleton resources
// Typed fields on Resource cover the core set; the store holds extensions
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates an empty store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces the resource of type T
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource returns the resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource returns the resource of type T or panics
// For core resources whose absence is a wiring bug
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// Resource holds the core singleton resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Galaxy *GalaxyResource
	Event  *EventQueueResource
	Status *status.Registry
}

// TimeResource is updated by World.Step at the start of every tick
type TimeResource struct {
	// SimTime is simulation time elapsed since the world started
	SimTime time.Duration

	// DeltaTime is the duration advanced by the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies fields in place, called under the world update lock
func (tr *TimeResource) Update(deltaTime time.Duration, frameNumber int64) {
	tr.DeltaTime = deltaTime
	tr.SimTime += deltaTime
	tr.FrameNumber = frameNumber
}

// DeltaSeconds returns DeltaTime in seconds
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ConfigResource holds simulation tuning fixed at startup
type ConfigResource struct {
	// Strict turns gate lookup misses into panics instead of dropped routes
	Strict bool

	// Workers bounds parallel per-object passes, 0 uses GOMAXPROCS
	Workers int

	// WarpSpeed is the speed factor given to ships without their own drive tuning
	WarpSpeed float64

	// WarpTrigger is the straight-line distance in system units above which warp engages
	WarpTrigger float64

	// WarpRampUnitMeters is the distance covered by each warp ramp
	WarpRampUnitMeters float64

	// TieBreak picks among equal-length routes
	TieBreak galaxy.TieBreak
}

// DefaultConfigResource returns the stock tuning
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		Workers:            parameter.DefaultWorkers,
		WarpSpeed:          parameter.DefaultWarpSpeed,
		WarpTrigger:        galaxy.MetersToSystem(parameter.WarpTriggerMeters),
		WarpRampUnitMeters: parameter.WarpRampUnitMeters,
	}
}

// GalaxyResource holds the route table and region lookup
// Routes is replaced only by the route table pass and read by every later pass
type GalaxyResource struct {
	Routes *galaxy.RouteTable
	Jitter galaxy.Jitter

	// Dirty is set when a gate registers and cleared when the table is rebuilt
	Dirty bool

	regionsByName map[string]core.Entity
}

// NewGalaxyResource creates an empty galaxy with a jitter seed
func NewGalaxyResource(seed uint64) *GalaxyResource {
	return &GalaxyResource{
		Jitter:        galaxy.NewJitter(seed),
		regionsByName: make(map[string]core.Entity),
	}
}

// NameRegion records a region handle by name
func (g *GalaxyResource) NameRegion(name string, region core.Entity) {
	if name != "" {
		g.regionsByName[name] = region
	}
}

// RegionByName resolves a region handle
func (g *GalaxyResource) RegionByName(name string) (core.Entity, bool) {
	e, ok := g.regionsByName[name]
	return e, ok
}

// EventQueueResource wraps the event queue for systems
type EventQueueResource struct {
	Queue *event.EventQueue
}
