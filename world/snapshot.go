package world

import (
	"github.com/goccy/go-json"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
)

// Snapshot is the read-only view of an entity handed to the presentation
// layer. Every field is a copy; mutating a snapshot never touches the world.
type Snapshot struct {
	ID        types.EntityID             `json:"id"`
	Position  *component.Position        `json:"position,omitempty"`
	Health    *component.Health          `json:"health,omitempty"`
	Capacitor *component.Capacitor       `json:"capacitor,omitempty"`
	WarpState *component.WarpState       `json:"warp_state,omitempty"`
	Overlay   *component.TacticalOverlay `json:"tactical_overlay,omitempty"`
}

// Snapshot returns the display components of an entity, copied out of the
// store. Presentation code must mutate the world only through system
// operations, never through a snapshot.
func (w *World) Snapshot(id types.EntityID) (Snapshot, error) {
	if !w.Exists(id) {
		return Snapshot{}, ErrEntityNotFound
	}
	snap := Snapshot{ID: id}
	if pos, err := Get[component.Position](w, id); err == nil {
		p := *pos
		snap.Position = &p
	}
	if health, err := Get[component.Health](w, id); err == nil {
		h := *health
		snap.Health = &h
	}
	if capacitor, err := Get[component.Capacitor](w, id); err == nil {
		c := *capacitor
		snap.Capacitor = &c
	}
	if warp, err := Get[component.WarpState](w, id); err == nil {
		ws := *warp
		if warp.LastAnomaly != nil {
			a := *warp.LastAnomaly
			ws.LastAnomaly = &a
		}
		snap.WarpState = &ws
	}
	if overlay, err := Get[component.TacticalOverlay](w, id); err == nil {
		o := *overlay
		o.RingDistances = append([]float64(nil), overlay.RingDistances...)
		snap.Overlay = &o
	}
	return snap, nil
}

// SnapshotJSON returns the entity snapshot encoded as JSON.
func (w *World) SnapshotJSON(id types.EntityID) ([]byte, error) {
	snap, err := w.Snapshot(id)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snap)
}
