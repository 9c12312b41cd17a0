package system

import (
	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// ModuleSystem cycles active fitted modules and drains capacitor. A module
// that cannot pay for its next cycle is force-deactivated with its progress
// reset; the partial cycle is not refunded.
type ModuleSystem struct{}

func NewModuleSystem() *ModuleSystem { return &ModuleSystem{} }

func (*ModuleSystem) Name() string { return "module" }

func (*ModuleSystem) Update(w *world.World, dt float64) error {
	w.Each(types.KindModuleRack, func(id types.EntityID) bool {
		rack, err := world.Get[component.ModuleRack](w, id)
		if err != nil {
			return true
		}
		capacitor, err := world.Get[component.Capacitor](w, id)
		if err != nil {
			w.MissingComponent(id, types.KindCapacitor)
			return true
		}
		advanceModules(rack.HighSlots, capacitor, dt)
		advanceModules(rack.MidSlots, capacitor, dt)
		advanceModules(rack.LowSlots, capacitor, dt)
		return true
	})
	return nil
}

func advanceModules(mods []component.FittedModule, capacitor *component.Capacitor, dt float64) {
	for i := range mods {
		m := &mods[i]
		if !m.Active || m.CycleTime <= 0 {
			continue
		}
		m.CycleProgress += dt / m.CycleTime
		if m.CycleProgress < 1.0 {
			continue
		}
		m.CycleProgress -= 1.0
		if capacitor.Capacitor >= m.CapacitorCost {
			capacitor.Capacitor -= m.CapacitorCost
		} else {
			// Can't pay for the cycle that just started: shut down.
			m.Active = false
			m.CycleProgress = 0
		}
	}
}

// moduleAt resolves a rack slot, validating slot type and index.
func moduleAt(w *world.World, id types.EntityID, slot component.SlotType, index int) (*component.FittedModule, error) {
	rack, err := world.Get[component.ModuleRack](w, id)
	if err != nil {
		return nil, eris.Wrapf(ErrNotFound, "entity %s has no module rack", id)
	}
	mods := rack.Slots(slot)
	if mods == nil {
		return nil, eris.Wrapf(ErrInvalidArgument, "unknown slot type %q", slot)
	}
	if index < 0 || index >= len(mods) {
		return nil, eris.Wrapf(ErrInvalidArgument, "slot index %d out of range for %s slots", index, slot)
	}
	return &mods[index], nil
}

// ActivateModule turns a fitted module on. Activation requires the ship's
// capacitor to at least cover one cycle; the actual debit happens when the
// cycle completes.
func ActivateModule(w *world.World, id types.EntityID, slot component.SlotType, index int) error {
	m, err := moduleAt(w, id, slot, index)
	if err != nil {
		return err
	}
	if m.Active {
		return eris.Wrapf(ErrInvalidState, "module %s[%d] is already active", slot, index)
	}
	capacitor, err := world.Get[component.Capacitor](w, id)
	if err != nil {
		return eris.Wrapf(ErrInvalidState, "entity %s has no capacitor", id)
	}
	if capacitor.Capacitor < m.CapacitorCost {
		return eris.Wrapf(ErrInsufficientResource,
			"capacitor %.1f below activation cost %.1f", capacitor.Capacitor, m.CapacitorCost)
	}
	m.Active = true
	m.CycleProgress = 0
	return nil
}

// DeactivateModule turns a fitted module off and resets its cycle.
func DeactivateModule(w *world.World, id types.EntityID, slot component.SlotType, index int) error {
	m, err := moduleAt(w, id, slot, index)
	if err != nil {
		return err
	}
	if !m.Active {
		return eris.Wrapf(ErrInvalidState, "module %s[%d] is not active", slot, index)
	}
	m.Active = false
	m.CycleProgress = 0
	return nil
}

// ToggleModule flips a module between active and inactive.
func ToggleModule(w *world.World, id types.EntityID, slot component.SlotType, index int) error {
	m, err := moduleAt(w, id, slot, index)
	if err != nil {
		return err
	}
	if m.Active {
		return DeactivateModule(w, id, slot, index)
	}
	return ActivateModule(w, id, slot, index)
}

// ValidateFitting checks the rack's total CPU and powergrid draw against the
// ship's limits. It is a gate for fitting changes, not something enforced
// automatically on attach.
func ValidateFitting(w *world.World, id types.EntityID) error {
	rack, err := world.Get[component.ModuleRack](w, id)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no module rack", id)
	}
	ship, err := world.Get[component.Ship](w, id)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no ship fitting stats", id)
	}
	var cpu, powergrid float64
	for _, group := range [][]component.FittedModule{rack.HighSlots, rack.MidSlots, rack.LowSlots} {
		for _, m := range group {
			cpu += m.CPUUsage
			powergrid += m.PowergridUsage
		}
	}
	if cpu > ship.CPUMax {
		return eris.Wrapf(ErrInsufficientResource, "fitting needs %.1f CPU, ship has %.1f", cpu, ship.CPUMax)
	}
	if powergrid > ship.PowergridMax {
		return eris.Wrapf(ErrInsufficientResource,
			"fitting needs %.1f powergrid, ship has %.1f", powergrid, ship.PowergridMax)
	}
	return nil
}
