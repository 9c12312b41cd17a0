// Package world implements the entity-component store at the center of the
// simulation. The world owns every entity; systems and external callers refer
// to entities by id only and look them up on each use.
package world

import (
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
)

type entry struct {
	id    types.EntityID
	slots [types.KindCount]component.Component
}

// World is the single authoritative entity store. It is not safe for
// concurrent use; the engine is the only driver of time advancement and all
// operations run between or within ticks on one goroutine.
type World struct {
	entities map[types.EntityID]*entry
	order    []types.EntityID // creation order, stable across a tick
	pending  []types.EntityID // ids queued for destruction at end of tick

	assertions bool
	logger     zerolog.Logger
}

// Option configures a World.
type Option func(*World)

// WithAssertions makes a missing expected component panic instead of being
// skipped. Development builds turn this on; production leaves it off so a
// corrupted entity degrades to a logged no-op.
func WithAssertions(on bool) Option {
	return func(w *World) { w.assertions = on }
}

// WithLogger sets the logger used for corruption reports.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) { w.logger = logger }
}

// New creates an empty world.
func New(opts ...Option) *World {
	w := &World{
		entities: make(map[types.EntityID]*entry),
		logger:   zerolog.New(os.Stderr).Level(zerolog.WarnLevel),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create adds an entity with the given id and no components.
func (w *World) Create(id types.EntityID) error {
	if id == types.BadID {
		return ErrInvalidEntityID
	}
	if _, ok := w.entities[id]; ok {
		return ErrEntityExists
	}
	w.entities[id] = &entry{id: id}
	w.order = append(w.order, id)
	return nil
}

// Spawn creates an entity with a generated "<prefix>-<uuid>" id and returns
// the id. Used for entities the simulation itself brings into existence, such
// as wrecks.
func (w *World) Spawn(prefix string) types.EntityID {
	id := types.EntityID(prefix + "-" + uuid.NewString())
	// A v4 collision is not a practical concern; Create only fails on one.
	if err := w.Create(id); err != nil {
		return w.Spawn(prefix)
	}
	return id
}

// Exists reports whether the entity is in the world.
func (w *World) Exists(id types.EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.entities) }

// Destroy removes an entity and all its components immediately. Callers
// iterating the world must use DestroyDeferred instead.
func (w *World) Destroy(id types.EntityID) error {
	if _, ok := w.entities[id]; !ok {
		return ErrEntityNotFound
	}
	delete(w.entities, id)
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return nil
}

// DestroyDeferred queues an entity for destruction at the next Flush. Safe to
// call while iterating; the in-progress iteration is not invalidated.
func (w *World) DestroyDeferred(id types.EntityID) {
	w.pending = append(w.pending, id)
}

// Flush destroys all queued entities and returns how many were removed.
// The engine calls this once at the end of every tick.
func (w *World) Flush() int {
	n := 0
	for _, id := range w.pending {
		if err := w.Destroy(id); err == nil {
			n++
		}
	}
	w.pending = w.pending[:0]
	return n
}

// Each calls fn for every entity currently holding the given component kind,
// in creation order. Returning false from fn stops the iteration. Entities
// created during the iteration are not visited.
func (w *World) Each(kind types.ComponentKind, fn func(id types.EntityID) bool) {
	ids := slices.Clone(w.order)
	for _, id := range ids {
		e, ok := w.entities[id]
		if !ok || e.slots[kind] == nil {
			continue
		}
		if !fn(id) {
			return
		}
	}
}

// Count returns the number of entities holding the given component kind.
func (w *World) Count(kind types.ComponentKind) int {
	n := 0
	for _, e := range w.entities {
		if e.slots[kind] != nil {
			n++
		}
	}
	return n
}

// HasKind reports whether the entity exists and holds the given kind.
func (w *World) HasKind(id types.EntityID, kind types.ComponentKind) bool {
	e, ok := w.entities[id]
	return ok && e.slots[kind] != nil
}

// MissingComponent handles an entity that is expected to hold a component but
// does not, which only happens if a prior bug corrupted the world. With
// assertions on it panics; otherwise it logs and the caller skips the entity.
func (w *World) MissingComponent(id types.EntityID, kind types.ComponentKind) {
	if w.assertions {
		panic("entity " + string(id) + " is missing expected component " + kind.String())
	}
	w.logger.Warn().
		Str("entity", string(id)).
		Str("component", kind.String()).
		Msg("entity missing expected component, skipping")
}

func (w *World) slot(id types.EntityID, kind types.ComponentKind) (component.Component, error) {
	e, ok := w.entities[id]
	if !ok {
		return nil, ErrEntityNotFound
	}
	c := e.slots[kind]
	if c == nil {
		return nil, ErrComponentNotFound
	}
	return c, nil
}

func (w *World) setSlot(id types.EntityID, c component.Component) error {
	e, ok := w.entities[id]
	if !ok {
		return ErrEntityNotFound
	}
	// Last write wins; components attach lazily and are only removed by
	// entity destruction.
	e.slots[c.Kind()] = c
	return nil
}

// Set attaches a component to an entity, replacing any previous value of the
// same kind.
func Set[T component.Component](w *World, id types.EntityID, c *T) error {
	return w.setSlot(id, any(c).(component.Component))
}

// Get returns the entity's component of type T for in-place mutation.
func Get[T component.Component](w *World, id types.EntityID) (*T, error) {
	var zero T
	c, err := w.slot(id, zero.Kind())
	if err != nil {
		return nil, err
	}
	return any(c).(*T), nil
}

// Has reports whether the entity exists and holds a component of type T.
func Has[T component.Component](w *World, id types.EntityID) bool {
	var zero T
	return w.HasKind(id, zero.Kind())
}
