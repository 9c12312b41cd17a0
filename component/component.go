// Package component defines the fixed set of data components an entity can
// hold. Components are plain records; all behavior lives in the systems that
// own them by contract.
package component

import (
	"math"

	"github.com/shifty81/EVEOFFLINE-sub004/types"
)

// Component is implemented by every component type. Kind reports the slot the
// component occupies on an entity.
type Component interface {
	Kind() types.ComponentKind
}

// Position is a location in space. Velocity integration happens elsewhere; the
// simulation only stores and compares positions.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (Position) Kind() types.ComponentKind { return types.KindPosition }

// DistanceTo returns the Euclidean distance to other.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Health tracks the three damage layers. An entity is alive iff Hull > 0.
type Health struct {
	Shield    float64 `json:"shield"`
	Armor     float64 `json:"armor"`
	Hull      float64 `json:"hull"`
	MaxShield float64 `json:"max_shield"`
	MaxArmor  float64 `json:"max_armor"`
	MaxHull   float64 `json:"max_hull"`
}

func (Health) Kind() types.ComponentKind { return types.KindHealth }

// Alive reports whether the entity's hull is intact.
func (h Health) Alive() bool { return h.Hull > 0 }

// Capacitor is the energy pool modules draw from.
type Capacitor struct {
	Capacitor    float64 `json:"capacitor"`
	MaxCapacitor float64 `json:"max_capacitor"`
}

func (Capacitor) Kind() types.ComponentKind { return types.KindCapacitor }

// Ship holds the hull's fitting limits, checked by fitting validation.
type Ship struct {
	CPUMax       float64 `json:"cpu_max"`
	PowergridMax float64 `json:"powergrid_max"`
}

func (Ship) Kind() types.ComponentKind { return types.KindShip }

// Player holds a pilot's monetary balance. The balance never goes negative;
// every debit is checked before it is applied.
type Player struct {
	ISK float64 `json:"isk"`
}

func (Player) Kind() types.ComponentKind { return types.KindPlayer }
