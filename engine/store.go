package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/gatewarp/core"
)

// AnyStore is the type-erased view World uses for lifecycle operations
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}

// Store is a container for one component type T
// Entity order is insertion order with swap-remove, so iteration is deterministic
// for a deterministic sequence of mutations
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// SetComponent inserts or replaces the component of e
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent returns the component of e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// UpdateComponent applies fn to an existing component in place, false if absent
func (s *Store[T]) UpdateComponent(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// RemoveEntity deletes the component of e
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		last := len(s.entities) - 1
		s.entities[i] = s.entities[last]
		s.entities = s.entities[:last]
	}
}

// HasEntity reports whether e has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns a copy of the entities holding this component
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entities)
}

// CountEntities returns the number of entities holding this component
func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponents empties the store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.components)
	s.entities = s.entities[:0]
}
