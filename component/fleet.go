package component

import "github.com/shifty81/EVEOFFLINE-sub004/types"

// MoraleState is the categorical label derived from a fleet's morale score.
type MoraleState string

const (
	MoraleInspired MoraleState = "inspired"
	MoraleSteady   MoraleState = "steady"
	MoraleShaken   MoraleState = "shaken"
	MoraleBroken   MoraleState = "broken"
)

// FleetMorale tallies a fleet's shared history with the player. MoraleScore
// and MoraleState are derived from the counters after every recorded event,
// never mutated directly.
type FleetMorale struct {
	Wins               int         `json:"wins"`
	Losses             int         `json:"losses"`
	ShipsLost          int         `json:"ships_lost"`
	TimesSavedByPlayer int         `json:"times_saved_by_player"`
	TimesPlayerSaved   int         `json:"times_player_saved"`
	MissionsTogether   int         `json:"missions_together"`
	MoraleScore        float64     `json:"morale_score"`
	MoraleState        MoraleState `json:"morale_state"`
}

func (FleetMorale) Kind() types.ComponentKind { return types.KindFleetMorale }

// WarpPhase is the stage of a warp in progress.
type WarpPhase string

const (
	WarpNone       WarpPhase = "none"
	WarpAlign      WarpPhase = "align"
	WarpAccelerate WarpPhase = "accelerate"
	WarpCruise     WarpPhase = "cruise"
	WarpDecelerate WarpPhase = "decelerate"
)

// Anomaly is one triggered warp anomaly.
type Anomaly struct {
	Tier string `json:"tier"`
	Name string `json:"name"`
}

// WarpState tracks an entity's current warp. WarpTime is seconds spent in the
// current warp; it resets whenever the phase changes. LastAnomaly holds only
// the most recent trigger, anomalies are never queued.
type WarpState struct {
	Phase        WarpPhase `json:"phase"`
	WarpTime     float64   `json:"warp_time"`
	LastAnomaly  *Anomaly  `json:"last_anomaly,omitempty"`
	AnomalyCount int       `json:"anomaly_count"`
}

func (WarpState) Kind() types.ComponentKind { return types.KindWarpState }

// TacticalOverlay is the per-entity state of the tactical overlay tool. It is
// display state owned by the simulation so every client sees the same rings.
type TacticalOverlay struct {
	Enabled       bool      `json:"enabled"`
	ToolRange     float64   `json:"tool_range"`
	ToolType      string    `json:"tool_type"`
	RingDistances []float64 `json:"ring_distances"`
}

func (TacticalOverlay) Kind() types.ComponentKind { return types.KindTacticalOverlay }
