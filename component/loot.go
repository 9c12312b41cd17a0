package component

import "github.com/shifty81/EVEOFFLINE-sub004/types"

// LootEntry is one independently rolled drop in a loot table.
type LootEntry struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	DropChance  float64 `json:"drop_chance"`
	MinQuantity int     `json:"min_quantity"`
	MaxQuantity int     `json:"max_quantity"`
	Volume      float64 `json:"volume"`
}

// LootTable describes what an entity drops when looted.
type LootTable struct {
	Entries []LootEntry `json:"entries"`
	ISKDrop float64     `json:"isk_drop"`
}

func (LootTable) Kind() types.ComponentKind { return types.KindLootTable }

// Wreck marks a transient lootable entity left behind by a destroyed ship.
// ISKDrop is the bounty copied from the source's loot table at creation; it is
// credited once by loot collection and zeroed.
type Wreck struct {
	SourceEntityID    types.EntityID `json:"source_entity_id"`
	LifetimeRemaining float64        `json:"lifetime_remaining"`
	Salvaged          bool           `json:"salvaged"`
	ISKDrop           float64        `json:"isk_drop"`
}

func (Wreck) Kind() types.ComponentKind { return types.KindWreck }
