package system

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// Tactical overlay operations. The overlay has no per-tick behavior; it is
// authoritative display state that clients read back through snapshots.

func overlayOf(w *world.World, id types.EntityID) (*component.TacticalOverlay, error) {
	overlay, err := world.Get[component.TacticalOverlay](w, id)
	if err != nil {
		return nil, eris.Wrapf(ErrNotFound, "entity %s has no tactical overlay", id)
	}
	return overlay, nil
}

// SetOverlayEnabled toggles the overlay on or off.
func SetOverlayEnabled(w *world.World, id types.EntityID, enabled bool) error {
	overlay, err := overlayOf(w, id)
	if err != nil {
		return err
	}
	overlay.Enabled = enabled
	return nil
}

// SetOverlayTool selects the active overlay tool and its range.
func SetOverlayTool(w *world.World, id types.EntityID, toolType string, toolRange float64) error {
	if toolRange < 0 {
		return eris.Wrapf(ErrInvalidArgument, "tool range must not be negative, got %f", toolRange)
	}
	overlay, err := overlayOf(w, id)
	if err != nil {
		return err
	}
	overlay.ToolType = toolType
	overlay.ToolRange = toolRange
	return nil
}

// SetOverlayRings replaces the overlay's range rings. Distances are stored
// sorted ascending.
func SetOverlayRings(w *world.World, id types.EntityID, distances []float64) error {
	for _, d := range distances {
		if d < 0 {
			return eris.Wrapf(ErrInvalidArgument, "ring distance must not be negative, got %f", d)
		}
	}
	overlay, err := overlayOf(w, id)
	if err != nil {
		return err
	}
	rings := append([]float64(nil), distances...)
	sort.Float64s(rings)
	overlay.RingDistances = rings
	return nil
}
