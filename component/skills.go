package component

import "github.com/shifty81/EVEOFFLINE-sub004/types"

// Skill is one trained skill on a character sheet.
type Skill struct {
	Level              int     `json:"level"`
	MaxLevel           int     `json:"max_level"`
	TrainingMultiplier float64 `json:"training_multiplier"`
}

// TrainingEntry is one queued train. Only the head of the queue ticks down.
type TrainingEntry struct {
	SkillID       string  `json:"skill_id"`
	TargetLevel   int     `json:"target_level"`
	TimeRemaining float64 `json:"time_remaining"`
}

// SkillSet is a character's skills plus the FIFO training queue.
type SkillSet struct {
	Skills        map[string]Skill `json:"skills"`
	TrainingQueue []TrainingEntry  `json:"training_queue"`
	TotalSP       float64          `json:"total_sp"`
}

func (SkillSet) Kind() types.ComponentKind { return types.KindSkillSet }

// CurrentLevel returns the trained level of a skill, zero if unknown.
func (s *SkillSet) CurrentLevel(skillID string) int {
	return s.Skills[skillID].Level
}
