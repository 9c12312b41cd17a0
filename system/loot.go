package system

import (
	"math/rand"

	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// wreckCargoCapacity is the fixed cargo volume of a spawned wreck, large
// enough that loot generation itself never overflows.
const wreckCargoCapacity = 10000.0

// LootSystem rolls drops from loot tables into wreck entities. All rolls come
// from one shared pseudo-random sequence that advances exactly once per draw,
// so a reseed reproduces a roll draw for draw.
type LootSystem struct {
	seed            int64
	rng             *rand.Rand
	defaultLifetime float64
}

// NewLootSystem creates a loot system whose roll sequence starts at seed.
// Wrecks it spawns persist for defaultLifetime seconds.
func NewLootSystem(seed int64, defaultLifetime float64) *LootSystem {
	return &LootSystem{
		seed:            seed,
		rng:             rand.New(rand.NewSource(seed)),
		defaultLifetime: defaultLifetime,
	}
}

func (*LootSystem) Name() string { return "loot" }

// Init rewinds the roll sequence to the configured seed so every fresh world
// starts from the same sequence.
func (s *LootSystem) Init(*world.World) error {
	s.SetRandomSeed(s.seed)
	return nil
}

// Update is a no-op: loot generation is operation-driven, the system holds
// only the shared roll sequence.
func (*LootSystem) Update(*world.World, float64) error { return nil }

// SetRandomSeed restarts the shared roll sequence at seed.
func (s *LootSystem) SetRandomSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// GenerateLoot rolls a source entity's loot table and spawns a wreck holding
// the results and a copy of the table's ISK drop. Each table entry consumes
// one draw; a hit consumes a second draw for the quantity.
func (s *LootSystem) GenerateLoot(w *world.World, sourceID types.EntityID) (types.EntityID, error) {
	table, err := world.Get[component.LootTable](w, sourceID)
	if err != nil {
		return types.BadID, eris.Wrapf(ErrNotFound, "entity %s has no loot table", sourceID)
	}

	pos := component.Position{}
	if sourcePos, err := world.Get[component.Position](w, sourceID); err == nil {
		pos = *sourcePos
	}

	wreckID := w.Spawn("wreck")
	_ = world.Set(w, wreckID, &pos)
	_ = world.Set(w, wreckID, &component.Wreck{
		SourceEntityID:    sourceID,
		LifetimeRemaining: s.defaultLifetime,
		ISKDrop:           table.ISKDrop,
	})
	cargo := component.Inventory{MaxCapacity: wreckCargoCapacity}
	for _, entry := range table.Entries {
		if s.rng.Float64() >= entry.DropChance {
			continue
		}
		quantity := entry.MinQuantity
		if spread := entry.MaxQuantity - entry.MinQuantity; spread > 0 {
			quantity += s.rng.Intn(spread + 1)
		}
		cargo.Add(component.Item{
			ItemID:   entry.ItemID,
			Name:     entry.Name,
			Type:     entry.Type,
			Quantity: quantity,
			Volume:   entry.Volume,
		})
	}
	_ = world.Set(w, wreckID, &cargo)
	return wreckID, nil
}

// CollectLoot moves a wreck's contents to a player item by item, skipping any
// stack that would overflow the player's cargo. The ISK bounty is credited in
// full regardless of how the item transfers go, and only once.
func CollectLoot(w *world.World, playerID, wreckID types.EntityID) error {
	wreck, err := world.Get[component.Wreck](w, wreckID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s is not a wreck", wreckID)
	}
	wreckCargo, err := world.Get[component.Inventory](w, wreckID)
	if err != nil {
		w.MissingComponent(wreckID, types.KindInventory)
		return eris.Wrapf(ErrNotFound, "wreck %s has no cargo", wreckID)
	}
	playerCargo, err := world.Get[component.Inventory](w, playerID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no cargo hold", playerID)
	}
	player, err := world.Get[component.Player](w, playerID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no wallet", playerID)
	}

	remaining := wreckCargo.Items[:0]
	for _, item := range wreckCargo.Items {
		// A stack moves whole or not at all.
		if playerCargo.CanFit(item.StackVolume()) {
			playerCargo.Add(item)
		} else {
			remaining = append(remaining, item)
		}
	}
	wreckCargo.Items = remaining

	player.ISK += wreck.ISKDrop
	wreck.ISKDrop = 0
	return nil
}
