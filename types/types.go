// Package types holds the identifier and component-kind vocabulary shared by the
// world store and the domain systems.
package types

// EntityID is the unique identifier of an entity in the world. IDs are opaque
// strings; cross-references between entities (wreck sources, job owners, policy
// holders) are stored as EntityIDs and resolved through the world on every use,
// never as direct pointers.
type EntityID string

// BadID is the zero EntityID. It never refers to a live entity.
const BadID EntityID = ""

// ComponentKind enumerates the fixed component set. The component set is
// domain-specific and closed; kinds index directly into each entity's component
// slot array, so there is no reflection on the hot path.
type ComponentKind uint8

const (
	KindPosition ComponentKind = iota
	KindHealth
	KindCapacitor
	KindInventory
	KindModuleRack
	KindShip
	KindSkillSet
	KindManufacturingFacility
	KindInsurancePolicy
	KindLootTable
	KindWreck
	KindFleetMorale
	KindWarpState
	KindTacticalOverlay
	KindPlayer

	kindCount // must stay last
)

// KindCount is the number of component kinds, i.e. the size of an entity's
// component slot array.
const KindCount = int(kindCount)

var kindNames = [KindCount]string{
	"position",
	"health",
	"capacitor",
	"inventory",
	"module_rack",
	"ship",
	"skill_set",
	"manufacturing_facility",
	"insurance_policy",
	"loot_table",
	"wreck",
	"fleet_morale",
	"warp_state",
	"tactical_overlay",
	"player",
}

func (k ComponentKind) String() string {
	if int(k) >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}
