// Package scenario loads the starting universe from a YAML file and applies
// it to a world. Base game entities (players, ships, facilities, fleets) live
// for the simulation's lifetime, so the scenario is applied exactly once at
// startup.
package scenario

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type Module struct {
	Name           string  `yaml:"name"`
	CycleTime      float64 `yaml:"cycle_time"`
	CapacitorCost  float64 `yaml:"capacitor_cost"`
	CPUUsage       float64 `yaml:"cpu_usage"`
	PowergridUsage float64 `yaml:"powergrid_usage"`
}

type Skill struct {
	Level              int     `yaml:"level"`
	MaxLevel           int     `yaml:"max_level"`
	TrainingMultiplier float64 `yaml:"training_multiplier"`
}

type LootEntry struct {
	ItemID      string  `yaml:"item_id"`
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	DropChance  float64 `yaml:"drop_chance"`
	MinQuantity int     `yaml:"min_quantity"`
	MaxQuantity int     `yaml:"max_quantity"`
	Volume      float64 `yaml:"volume"`
}

type Player struct {
	ID            string   `yaml:"id"`
	ISK           float64  `yaml:"isk"`
	CargoCapacity float64  `yaml:"cargo_capacity"`
	Position      Position `yaml:"position"`
}

type Ship struct {
	ID           string           `yaml:"id"`
	Position     Position         `yaml:"position"`
	Shield       float64          `yaml:"shield"`
	Armor        float64          `yaml:"armor"`
	Hull         float64          `yaml:"hull"`
	Capacitor    float64          `yaml:"capacitor"`
	MaxCapacitor float64          `yaml:"max_capacitor"`
	CPUMax       float64          `yaml:"cpu_max"`
	PowergridMax float64          `yaml:"powergrid_max"`
	HighSlots    []Module         `yaml:"high_slots"`
	MidSlots     []Module         `yaml:"mid_slots"`
	LowSlots     []Module         `yaml:"low_slots"`
	Skills       map[string]Skill `yaml:"skills"`
	LootEntries  []LootEntry      `yaml:"loot_entries"`
	ISKDrop      float64          `yaml:"isk_drop"`
}

type Facility struct {
	ID      string `yaml:"id"`
	MaxJobs int    `yaml:"max_jobs"`
}

type Scenario struct {
	Players    []Player   `yaml:"players"`
	Ships      []Ship     `yaml:"ships"`
	Facilities []Facility `yaml:"facilities"`
	Fleets     []string   `yaml:"fleets"`
}

// Load parses a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read scenario %s", path)
	}
	var s Scenario
	if err := yaml.Unmarshal(f, &s); err != nil {
		return nil, eris.Wrapf(err, "failed to parse scenario %s", path)
	}
	return &s, nil
}

// Apply creates the scenario's entities in the world.
func (s *Scenario) Apply(w *world.World) error {
	for _, p := range s.Players {
		id := types.EntityID(p.ID)
		if err := w.Create(id); err != nil {
			return eris.Wrapf(err, "failed to create player %s", p.ID)
		}
		_ = world.Set(w, id, &component.Player{ISK: p.ISK})
		_ = world.Set(w, id, &component.Position{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z})
		_ = world.Set(w, id, &component.Inventory{MaxCapacity: p.CargoCapacity})
	}
	for _, sh := range s.Ships {
		id := types.EntityID(sh.ID)
		if err := w.Create(id); err != nil {
			return eris.Wrapf(err, "failed to create ship %s", sh.ID)
		}
		_ = world.Set(w, id, &component.Position{X: sh.Position.X, Y: sh.Position.Y, Z: sh.Position.Z})
		_ = world.Set(w, id, &component.Health{
			Shield: sh.Shield, MaxShield: sh.Shield,
			Armor: sh.Armor, MaxArmor: sh.Armor,
			Hull: sh.Hull, MaxHull: sh.Hull,
		})
		_ = world.Set(w, id, &component.Capacitor{Capacitor: sh.Capacitor, MaxCapacitor: sh.MaxCapacitor})
		_ = world.Set(w, id, &component.Ship{CPUMax: sh.CPUMax, PowergridMax: sh.PowergridMax})
		_ = world.Set(w, id, &component.ModuleRack{
			HighSlots: fittedModules(sh.HighSlots),
			MidSlots:  fittedModules(sh.MidSlots),
			LowSlots:  fittedModules(sh.LowSlots),
		})
		_ = world.Set(w, id, &component.WarpState{Phase: component.WarpNone})
		_ = world.Set(w, id, &component.TacticalOverlay{})
		if len(sh.Skills) > 0 {
			skills := component.SkillSet{Skills: make(map[string]component.Skill, len(sh.Skills))}
			for skillID, sk := range sh.Skills {
				skills.Skills[skillID] = component.Skill{
					Level:              sk.Level,
					MaxLevel:           sk.MaxLevel,
					TrainingMultiplier: sk.TrainingMultiplier,
				}
			}
			_ = world.Set(w, id, &skills)
		}
		if len(sh.LootEntries) > 0 || sh.ISKDrop > 0 {
			table := component.LootTable{ISKDrop: sh.ISKDrop}
			for _, e := range sh.LootEntries {
				table.Entries = append(table.Entries, component.LootEntry{
					ItemID:      e.ItemID,
					Name:        e.Name,
					Type:        e.Type,
					DropChance:  e.DropChance,
					MinQuantity: e.MinQuantity,
					MaxQuantity: e.MaxQuantity,
					Volume:      e.Volume,
				})
			}
			_ = world.Set(w, id, &table)
		}
	}
	for _, f := range s.Facilities {
		id := types.EntityID(f.ID)
		if err := w.Create(id); err != nil {
			return eris.Wrapf(err, "failed to create facility %s", f.ID)
		}
		_ = world.Set(w, id, &component.ManufacturingFacility{MaxJobs: f.MaxJobs})
	}
	for _, fleetID := range s.Fleets {
		id := types.EntityID(fleetID)
		if err := w.Create(id); err != nil {
			return eris.Wrapf(err, "failed to create fleet %s", fleetID)
		}
		_ = world.Set(w, id, &component.FleetMorale{
			MoraleScore: 50,
			MoraleState: component.MoraleSteady,
		})
	}
	return nil
}

func fittedModules(mods []Module) []component.FittedModule {
	out := make([]component.FittedModule, 0, len(mods))
	for _, m := range mods {
		out = append(out, component.FittedModule{
			Name:           m.Name,
			CycleTime:      m.CycleTime,
			CapacitorCost:  m.CapacitorCost,
			CPUUsage:       m.CPUUsage,
			PowergridUsage: m.PowergridUsage,
		})
	}
	return out
}
