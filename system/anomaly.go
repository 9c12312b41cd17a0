package system

import (
	"hash/fnv"

	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

const (
	// Seconds of cruise before anomaly rolls begin.
	anomalyMinWarpTime = 20.0

	// Knuth's multiplicative hashing constant; fixed so a roll is fully
	// determined by (entity id, warp time).
	anomalyMixConstant = 2654435761

	anomalyRollSpace = 200
)

// Anomaly rarity tiers, rolled against a 200-wide bucket space: 1 legendary,
// 3 shear, 20 sensory, 67 visual, the rest nothing.
var (
	anomalyLegendary = []string{
		"ancient jump gate",
		"dyson fragment",
	}
	anomalyShear = []string{
		"spatial shear",
		"warp tunnel collapse",
		"gravitational eddy",
	}
	anomalySensory = []string{
		"sensor ghost",
		"phantom contact",
		"static cascade",
		"doppler mirage",
	}
	anomalyVisual = []string{
		"ion trail",
		"plasma wisp",
		"debris cloud",
		"stellar flare echo",
		"aurora sheet",
	}
)

// AnomalySystem accrues time-in-warp and rolls warp anomalies for entities
// cruising long enough. The roll is a pure function of the entity id and the
// current warp time; no random state is involved, so replays agree.
type AnomalySystem struct{}

func NewAnomalySystem() *AnomalySystem { return &AnomalySystem{} }

func (*AnomalySystem) Name() string { return "anomaly" }

func (*AnomalySystem) Update(w *world.World, dt float64) error {
	w.Each(types.KindWarpState, func(id types.EntityID) bool {
		warp, err := world.Get[component.WarpState](w, id)
		if err != nil {
			return true
		}
		if warp.Phase == component.WarpNone {
			return true
		}
		warp.WarpTime += dt
		if warp.Phase != component.WarpCruise || warp.WarpTime < anomalyMinWarpTime {
			return true
		}
		if anomaly, ok := RollAnomaly(id, warp.WarpTime); ok {
			// Only the most recent trigger is kept.
			warp.LastAnomaly = &anomaly
			warp.AnomalyCount++
		}
		return true
	})
	return nil
}

// RollAnomaly computes the deterministic anomaly roll for an entity at the
// given warp time. The same inputs always yield the same result.
func RollAnomaly(id types.EntityID, warpTime float64) (component.Anomaly, bool) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mix := (h.Sum32() ^ uint32(warpTime*1000)) * anomalyMixConstant
	roll := mix % anomalyRollSpace
	index := mix / anomalyRollSpace

	var tier string
	var templates []string
	switch {
	case roll < 1:
		tier, templates = "legendary", anomalyLegendary
	case roll < 4:
		tier, templates = "shear", anomalyShear
	case roll < 24:
		tier, templates = "sensory", anomalySensory
	case roll < 91:
		tier, templates = "visual", anomalyVisual
	default:
		return component.Anomaly{}, false
	}
	return component.Anomaly{
		Tier: tier,
		Name: templates[index%uint32(len(templates))],
	}, true
}

// SetWarpPhase moves an entity to a new warp phase. Changing phase resets the
// time spent in warp.
func SetWarpPhase(w *world.World, id types.EntityID, phase component.WarpPhase) error {
	switch phase {
	case component.WarpNone, component.WarpAlign, component.WarpAccelerate,
		component.WarpCruise, component.WarpDecelerate:
	default:
		return eris.Wrapf(ErrInvalidArgument, "unknown warp phase %q", phase)
	}
	warp, err := world.Get[component.WarpState](w, id)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no warp state", id)
	}
	if warp.Phase != phase {
		warp.Phase = phase
		warp.WarpTime = 0
	}
	return nil
}
