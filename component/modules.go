package component

import "github.com/shifty81/EVEOFFLINE-sub004/types"

// SlotType names one of the three module slot groups on a rack.
type SlotType string

const (
	SlotHigh SlotType = "high"
	SlotMid  SlotType = "mid"
	SlotLow  SlotType = "low"
)

// FittedModule is one module in a rack slot. CycleProgress stays in [0, 1);
// crossing 1.0 wraps and costs one capacitor debit.
type FittedModule struct {
	Name           string  `json:"name"`
	CycleTime      float64 `json:"cycle_time"`
	CycleProgress  float64 `json:"cycle_progress"`
	Active         bool    `json:"active"`
	CapacitorCost  float64 `json:"capacitor_cost"`
	CPUUsage       float64 `json:"cpu_usage"`
	PowergridUsage float64 `json:"powergrid_usage"`
}

// ModuleRack holds the three slot groups of fitted modules.
type ModuleRack struct {
	HighSlots []FittedModule `json:"high_slots"`
	MidSlots  []FittedModule `json:"mid_slots"`
	LowSlots  []FittedModule `json:"low_slots"`
}

func (ModuleRack) Kind() types.ComponentKind { return types.KindModuleRack }

// Slots returns the slot group for the given type, or nil if the type is
// unknown. The returned slice aliases the rack's storage.
func (r *ModuleRack) Slots(slot SlotType) []FittedModule {
	switch slot {
	case SlotHigh:
		return r.HighSlots
	case SlotMid:
		return r.MidSlots
	case SlotLow:
		return r.LowSlots
	}
	return nil
}
