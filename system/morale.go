package system

import (
	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// MoraleEvent is one recordable event in a fleet's shared history.
type MoraleEvent string

const (
	MoraleWin           MoraleEvent = "win"
	MoraleLoss          MoraleEvent = "loss"
	MoraleShipLost      MoraleEvent = "ship_lost"
	MoraleSavedByPlayer MoraleEvent = "saved_by_player"
	MoralePlayerSaved   MoraleEvent = "player_saved"
	MoraleMission       MoraleEvent = "mission"
)

// Morale scoring weights. The score is a pure function of the counters: base
// 50, clamped to [0, 100] after weighting.
const (
	moraleBase           = 50.0
	moraleWinWeight      = 5.0
	moraleLossWeight     = -3.0
	moraleShipLostWeight = -2.0
	moraleSaveWeight     = 4.0
	moraleSavedWeight    = 6.0
	moraleMissionWeight  = 1.0

	moraleInspiredFloor = 75.0
	moraleSteadyFloor   = 45.0
	moraleShakenFloor   = 20.0
)

// MoraleSystem maintains each fleet's derived morale score and state. Events
// mutate counters through RecordMoraleEvent; the per-tick update only
// recomputes the derivation, which is idempotent.
type MoraleSystem struct{}

func NewMoraleSystem() *MoraleSystem { return &MoraleSystem{} }

func (*MoraleSystem) Name() string { return "morale" }

func (*MoraleSystem) Update(w *world.World, _ float64) error {
	w.Each(types.KindFleetMorale, func(id types.EntityID) bool {
		if morale, err := world.Get[component.FleetMorale](w, id); err == nil {
			recomputeMorale(morale)
		}
		return true
	})
	return nil
}

// RecordMoraleEvent tallies one event and recomputes the fleet's score and
// state.
func RecordMoraleEvent(w *world.World, id types.EntityID, event MoraleEvent) error {
	morale, err := world.Get[component.FleetMorale](w, id)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no fleet morale", id)
	}
	switch event {
	case MoraleWin:
		morale.Wins++
	case MoraleLoss:
		morale.Losses++
	case MoraleShipLost:
		morale.ShipsLost++
	case MoraleSavedByPlayer:
		morale.TimesSavedByPlayer++
	case MoralePlayerSaved:
		morale.TimesPlayerSaved++
	case MoraleMission:
		morale.MissionsTogether++
	default:
		return eris.Wrapf(ErrInvalidArgument, "unknown morale event %q", event)
	}
	recomputeMorale(morale)
	return nil
}

func recomputeMorale(m *component.FleetMorale) {
	score := moraleBase +
		moraleWinWeight*float64(m.Wins) +
		moraleLossWeight*float64(m.Losses) +
		moraleShipLostWeight*float64(m.ShipsLost) +
		moraleSaveWeight*float64(m.TimesPlayerSaved) +
		moraleSavedWeight*float64(m.TimesSavedByPlayer) +
		moraleMissionWeight*float64(m.MissionsTogether)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	m.MoraleScore = score
	switch {
	case score >= moraleInspiredFloor:
		m.MoraleState = component.MoraleInspired
	case score >= moraleSteadyFloor:
		m.MoraleState = component.MoraleSteady
	case score >= moraleShakenFloor:
		m.MoraleState = component.MoraleShaken
	default:
		m.MoraleState = component.MoraleBroken
	}
}
