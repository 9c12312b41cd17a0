package component

import "github.com/shifty81/EVEOFFLINE-sub004/types"

// Item is a stack of a single item type inside an Inventory.
type Item struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Volume   float64 `json:"volume"`
}

// StackVolume is the total volume the stack occupies.
func (it Item) StackVolume() float64 {
	return it.Volume * float64(it.Quantity)
}

// Inventory is an ordered list of item stacks bounded by volume.
// Invariant: the sum of all stack volumes never exceeds MaxCapacity.
type Inventory struct {
	Items       []Item  `json:"items"`
	MaxCapacity float64 `json:"max_capacity"`
}

func (Inventory) Kind() types.ComponentKind { return types.KindInventory }

// UsedCapacity returns the volume currently occupied.
func (inv *Inventory) UsedCapacity() float64 {
	var used float64
	for _, it := range inv.Items {
		used += it.StackVolume()
	}
	return used
}

// CanFit reports whether volume more units of space are available.
func (inv *Inventory) CanFit(volume float64) bool {
	return inv.UsedCapacity()+volume <= inv.MaxCapacity
}

// Add appends an item stack, merging into an existing stack of the same item
// id and type. The caller is responsible for the capacity check; Add itself
// never rejects, so bulk moves that deliberately skip the check stay possible.
func (inv *Inventory) Add(item Item) {
	if item.Quantity <= 0 {
		return
	}
	for i := range inv.Items {
		if inv.Items[i].ItemID == item.ItemID && inv.Items[i].Type == item.Type {
			inv.Items[i].Quantity += item.Quantity
			return
		}
	}
	inv.Items = append(inv.Items, item)
}
