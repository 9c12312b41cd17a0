package system_test

import (
	"testing"

	"github.com/shifty81/EVEOFFLINE-sub004/assert"
	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/system"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

func newFleet(t *testing.T, w *world.World, id types.EntityID) *component.FleetMorale {
	t.Helper()
	assert.NilError(t, w.Create(id))
	morale := &component.FleetMorale{MoraleScore: 50, MoraleState: component.MoraleSteady}
	assert.NilError(t, world.Set(w, id, morale))
	return morale
}

func TestMoraleEventsUpdateCountersAndScore(t *testing.T) {
	w := world.New()
	morale := newFleet(t, w, "fleet")

	assert.NilError(t, system.RecordMoraleEvent(w, "fleet", system.MoraleWin))
	assert.Equal(t, 1, morale.Wins)
	assert.Equal(t, 55.0, morale.MoraleScore)

	assert.NilError(t, system.RecordMoraleEvent(w, "fleet", system.MoraleLoss))
	assert.Equal(t, 1, morale.Losses)
	assert.Equal(t, 52.0, morale.MoraleScore)
	assert.Equal(t, component.MoraleSteady, morale.MoraleState)
}

func TestMoraleStatesAtBoundaries(t *testing.T) {
	w := world.New()
	morale := newFleet(t, w, "fleet")

	// 5 wins: 50 + 25 = 75, exactly the inspired floor.
	for i := 0; i < 5; i++ {
		assert.NilError(t, system.RecordMoraleEvent(w, "fleet", system.MoraleWin))
	}
	assert.Equal(t, 75.0, morale.MoraleScore)
	assert.Equal(t, component.MoraleInspired, morale.MoraleState)

	// Losses drag the fleet down through shaken into broken.
	for i := 0; i < 19; i++ {
		assert.NilError(t, system.RecordMoraleEvent(w, "fleet", system.MoraleLoss))
	}
	assert.Equal(t, 18.0, morale.MoraleScore)
	assert.Equal(t, component.MoraleBroken, morale.MoraleState)
}

func TestMoraleScoreIsClamped(t *testing.T) {
	w := world.New()
	morale := newFleet(t, w, "fleet")

	for i := 0; i < 30; i++ {
		assert.NilError(t, system.RecordMoraleEvent(w, "fleet", system.MoraleWin))
	}
	assert.Equal(t, 100.0, morale.MoraleScore)

	for i := 0; i < 100; i++ {
		assert.NilError(t, system.RecordMoraleEvent(w, "fleet", system.MoraleShipLost))
	}
	assert.Equal(t, 0.0, morale.MoraleScore)
	assert.Equal(t, component.MoraleBroken, morale.MoraleState)
}

func TestMoraleIsPureFunctionOfCounters(t *testing.T) {
	w := world.New()
	a := newFleet(t, w, "fleet-a")
	b := newFleet(t, w, "fleet-b")

	events := []system.MoraleEvent{
		system.MoraleWin, system.MoraleMission, system.MoraleSavedByPlayer,
		system.MoraleLoss, system.MoralePlayerSaved, system.MoraleShipLost,
	}
	for _, ev := range events {
		assert.NilError(t, system.RecordMoraleEvent(w, "fleet-a", ev))
	}
	// Same tallies in a different order land on the same score and state.
	for i := len(events) - 1; i >= 0; i-- {
		assert.NilError(t, system.RecordMoraleEvent(w, "fleet-b", events[i]))
	}
	assert.Equal(t, a.MoraleScore, b.MoraleScore)
	assert.Equal(t, a.MoraleState, b.MoraleState)
}

func TestRecordMoraleEventValidation(t *testing.T) {
	w := world.New()
	newFleet(t, w, "fleet")

	err := system.RecordMoraleEvent(w, "fleet", "mutiny")
	assert.ErrorIs(t, err, system.ErrInvalidArgument)

	err = system.RecordMoraleEvent(w, "ghost-fleet", system.MoraleWin)
	assert.ErrorIs(t, err, system.ErrNotFound)
}

func TestUpdateRecomputesDerivedState(t *testing.T) {
	w := world.New()
	morale := newFleet(t, w, "fleet")
	// Counters poked directly, derivation stale.
	morale.Wins = 10
	morale.MoraleScore = -1

	sys := system.NewMoraleSystem()
	assert.NilError(t, sys.Update(w, 0.1))
	assert.Equal(t, 100.0, morale.MoraleScore)
	assert.Equal(t, component.MoraleInspired, morale.MoraleState)
}
