package system

import (
	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// WreckSystem decays wreck lifetimes and cleans up expired or fully salvaged
// wrecks. Destruction is deferred to the end of the tick so the system's own
// iteration stays valid.
type WreckSystem struct {
	salvageRange float64
}

// NewWreckSystem creates a wreck system with the given salvage range in
// meters.
func NewWreckSystem(salvageRange float64) *WreckSystem {
	return &WreckSystem{salvageRange: salvageRange}
}

func (*WreckSystem) Name() string { return "wreck" }

func (*WreckSystem) Update(w *world.World, dt float64) error {
	w.Each(types.KindWreck, func(id types.EntityID) bool {
		wreck, err := world.Get[component.Wreck](w, id)
		if err != nil {
			return true
		}
		wreck.LifetimeRemaining -= dt
		if wreck.LifetimeRemaining <= 0 {
			w.DestroyDeferred(id)
			return true
		}
		if wreck.Salvaged && wreckEmpty(w, id) {
			w.DestroyDeferred(id)
		}
		return true
	})
	return nil
}

func wreckEmpty(w *world.World, id types.EntityID) bool {
	cargo, err := world.Get[component.Inventory](w, id)
	return err != nil || len(cargo.Items) == 0
}

// CreateWreck spawns a wreck at the given position with a caller-specified
// lifetime, as happens on ship destruction. The wreck starts with empty cargo
// and no bounty.
func CreateWreck(
	w *world.World,
	sourceID types.EntityID,
	pos component.Position,
	lifetime float64,
) (types.EntityID, error) {
	if lifetime <= 0 {
		return types.BadID, eris.Wrapf(ErrInvalidArgument, "wreck lifetime must be positive, got %f", lifetime)
	}
	wreckID := w.Spawn("wreck")
	_ = world.Set(w, wreckID, &pos)
	_ = world.Set(w, wreckID, &component.Wreck{
		SourceEntityID:    sourceID,
		LifetimeRemaining: lifetime,
	})
	_ = world.Set(w, wreckID, &component.Inventory{MaxCapacity: wreckCargoCapacity})
	return wreckID, nil
}

// SalvageWreck transfers a wreck's entire cargo to the player and marks the
// wreck salvaged. The bulk move deliberately skips the player-side capacity
// check; item-by-item looting with capacity enforcement is CollectLoot's job.
// An already-salvaged or out-of-range wreck fails without side effects.
func (s *WreckSystem) SalvageWreck(w *world.World, playerID, wreckID types.EntityID) error {
	wreck, err := world.Get[component.Wreck](w, wreckID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s is not a wreck", wreckID)
	}
	if wreck.Salvaged {
		return eris.Wrapf(ErrInvalidState, "wreck %s is already salvaged", wreckID)
	}
	playerPos, err := world.Get[component.Position](w, playerID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no position", playerID)
	}
	wreckPos, err := world.Get[component.Position](w, wreckID)
	if err != nil {
		w.MissingComponent(wreckID, types.KindPosition)
		return eris.Wrapf(ErrNotFound, "wreck %s has no position", wreckID)
	}
	if dist := playerPos.DistanceTo(*wreckPos); dist > s.salvageRange {
		return eris.Wrapf(ErrInvalidState,
			"wreck %s is %.0fm away, salvage range is %.0fm", wreckID, dist, s.salvageRange)
	}
	playerCargo, err := world.Get[component.Inventory](w, playerID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no cargo hold", playerID)
	}
	wreckCargo, err := world.Get[component.Inventory](w, wreckID)
	if err != nil {
		w.MissingComponent(wreckID, types.KindInventory)
		return eris.Wrapf(ErrNotFound, "wreck %s has no cargo", wreckID)
	}
	for _, item := range wreckCargo.Items {
		playerCargo.Add(item)
	}
	wreckCargo.Items = nil
	wreck.Salvaged = true
	return nil
}
