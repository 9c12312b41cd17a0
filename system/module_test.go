package system_test

import (
	"testing"

	"github.com/shifty81/EVEOFFLINE-sub004/assert"
	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/system"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

func newShip(t *testing.T, w *world.World, id types.EntityID, capacitor float64, mods ...component.FittedModule) {
	t.Helper()
	assert.NilError(t, w.Create(id))
	assert.NilError(t, world.Set(w, id, &component.Capacitor{Capacitor: capacitor, MaxCapacitor: capacitor}))
	assert.NilError(t, world.Set(w, id, &component.ModuleRack{HighSlots: mods}))
	assert.NilError(t, world.Set(w, id, &component.Ship{CPUMax: 100, PowergridMax: 50}))
}

func highSlot(t *testing.T, w *world.World, id types.EntityID, index int) *component.FittedModule {
	t.Helper()
	rack, err := world.Get[component.ModuleRack](w, id)
	assert.NilError(t, err)
	return &rack.HighSlots[index]
}

func TestActivateFailsOnInsufficientCapacitor(t *testing.T) {
	w := world.New()
	newShip(t, w, "ship-1", 4, component.FittedModule{CycleTime: 2, CapacitorCost: 5})

	err := system.ActivateModule(w, "ship-1", component.SlotHigh, 0)
	assert.ErrorIs(t, err, system.ErrInsufficientResource)
	assert.False(t, highSlot(t, w, "ship-1", 0).Active)
}

func TestActivationSucceedsAfterCapacitorRaise(t *testing.T) {
	w := world.New()
	newShip(t, w, "ship-1", 4, component.FittedModule{CycleTime: 2, CapacitorCost: 5})

	capacitor, err := world.Get[component.Capacitor](w, "ship-1")
	assert.NilError(t, err)
	capacitor.Capacitor = 10

	assert.NilError(t, system.ActivateModule(w, "ship-1", component.SlotHigh, 0))
	assert.True(t, highSlot(t, w, "ship-1", 0).Active)

	// 2s of 0.5s ticks completes exactly one cycle: one debit of 5,
	// progress wrapped back into [0, 1).
	sys := system.NewModuleSystem()
	for i := 0; i < 4; i++ {
		assert.NilError(t, sys.Update(w, 0.5))
	}
	assert.InDelta(t, 5.0, capacitor.Capacitor, 1e-9)
	m := highSlot(t, w, "ship-1", 0)
	assert.True(t, m.Active)
	assert.Assert(t, m.CycleProgress >= 0 && m.CycleProgress < 1)
}

func TestCycleWithoutCapacitorForceDeactivates(t *testing.T) {
	w := world.New()
	newShip(t, w, "ship-1", 12, component.FittedModule{CycleTime: 1, CapacitorCost: 10})
	assert.NilError(t, system.ActivateModule(w, "ship-1", component.SlotHigh, 0))

	sys := system.NewModuleSystem()
	assert.NilError(t, sys.Update(w, 1.0)) // first cycle paid: 12 -> 2
	assert.NilError(t, sys.Update(w, 1.0)) // second cycle unaffordable

	m := highSlot(t, w, "ship-1", 0)
	assert.False(t, m.Active)
	assert.Equal(t, 0.0, m.CycleProgress)
	capacitor, err := world.Get[component.Capacitor](w, "ship-1")
	assert.NilError(t, err)
	// The failed cycle is not refunded.
	assert.InDelta(t, 2.0, capacitor.Capacitor, 1e-9)
}

func TestActivateValidatesSlot(t *testing.T) {
	w := world.New()
	newShip(t, w, "ship-1", 100, component.FittedModule{CycleTime: 2, CapacitorCost: 5})

	err := system.ActivateModule(w, "ship-1", "rig", 0)
	assert.ErrorIs(t, err, system.ErrInvalidArgument)

	err = system.ActivateModule(w, "ship-1", component.SlotHigh, 7)
	assert.ErrorIs(t, err, system.ErrInvalidArgument)

	err = system.ActivateModule(w, "no-such-ship", component.SlotHigh, 0)
	assert.ErrorIs(t, err, system.ErrNotFound)
}

func TestActivateActiveModuleIsInvalidState(t *testing.T) {
	w := world.New()
	newShip(t, w, "ship-1", 100, component.FittedModule{CycleTime: 2, CapacitorCost: 5})
	assert.NilError(t, system.ActivateModule(w, "ship-1", component.SlotHigh, 0))

	err := system.ActivateModule(w, "ship-1", component.SlotHigh, 0)
	assert.ErrorIs(t, err, system.ErrInvalidState)

	err = system.DeactivateModule(w, "ship-1", component.SlotHigh, 0)
	assert.NilError(t, err)
	err = system.DeactivateModule(w, "ship-1", component.SlotHigh, 0)
	assert.ErrorIs(t, err, system.ErrInvalidState)
}

func TestToggleFlipsState(t *testing.T) {
	w := world.New()
	newShip(t, w, "ship-1", 100, component.FittedModule{CycleTime: 2, CapacitorCost: 5})

	assert.NilError(t, system.ToggleModule(w, "ship-1", component.SlotHigh, 0))
	assert.True(t, highSlot(t, w, "ship-1", 0).Active)
	assert.NilError(t, system.ToggleModule(w, "ship-1", component.SlotHigh, 0))
	assert.False(t, highSlot(t, w, "ship-1", 0).Active)
}

func TestValidateFitting(t *testing.T) {
	w := world.New()
	assert.NilError(t, w.Create("ship-1"))
	assert.NilError(t, world.Set(w, "ship-1", &component.Ship{CPUMax: 100, PowergridMax: 50}))
	assert.NilError(t, world.Set(w, "ship-1", &component.ModuleRack{
		HighSlots: []component.FittedModule{{CPUUsage: 40, PowergridUsage: 20}},
		MidSlots:  []component.FittedModule{{CPUUsage: 40, PowergridUsage: 20}},
		LowSlots:  []component.FittedModule{{CPUUsage: 20, PowergridUsage: 10}},
	}))
	assert.NilError(t, system.ValidateFitting(w, "ship-1"))

	rack, err := world.Get[component.ModuleRack](w, "ship-1")
	assert.NilError(t, err)
	rack.LowSlots[0].CPUUsage = 21
	assert.ErrorIs(t, system.ValidateFitting(w, "ship-1"), system.ErrInsufficientResource)
}

func TestUpdateSkipsRacklessAndCapacitorlessEntities(t *testing.T) {
	w := world.New()
	assert.NilError(t, w.Create("hulk"))
	assert.NilError(t, world.Set(w, "hulk", &component.ModuleRack{
		HighSlots: []component.FittedModule{{CycleTime: 1, CapacitorCost: 1, Active: true}},
	}))

	// No capacitor component: corrupted entity is skipped, not fatal.
	sys := system.NewModuleSystem()
	assert.NilError(t, sys.Update(w, 1.0))
}
