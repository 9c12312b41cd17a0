package system

import (
	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

const (
	// SP granted per target level per training multiplier on completion.
	skillPointBase = 1000.0
	// Seconds of training per target level per training multiplier.
	trainingTimeBase = 30.0

	minSkillLevel = 1
	maxSkillLevel = 5
)

// SkillSystem advances skill training. The queue is strict FIFO: only the
// head entry ticks down, and at most one entry completes per tick.
type SkillSystem struct{}

func NewSkillSystem() *SkillSystem { return &SkillSystem{} }

func (*SkillSystem) Name() string { return "skill" }

func (*SkillSystem) Update(w *world.World, dt float64) error {
	w.Each(types.KindSkillSet, func(id types.EntityID) bool {
		skills, err := world.Get[component.SkillSet](w, id)
		if err != nil || len(skills.TrainingQueue) == 0 {
			return true
		}
		head := &skills.TrainingQueue[0]
		head.TimeRemaining -= dt
		if head.TimeRemaining > 0 {
			return true
		}
		completeTraining(skills, head)
		skills.TrainingQueue = skills.TrainingQueue[1:]
		return true
	})
	return nil
}

// completeTraining applies one finished queue entry. A target above the
// skill's max level leaves the level untouched but still awards SP and
// consumed its queue time; that long-standing behavior is kept as is.
func completeTraining(skills *component.SkillSet, entry *component.TrainingEntry) {
	sk, ok := skills.Skills[entry.SkillID]
	if !ok {
		return
	}
	if entry.TargetLevel <= sk.MaxLevel {
		sk.Level = entry.TargetLevel
	}
	skills.Skills[entry.SkillID] = sk
	// Multiplier read after the level update, matching payout to the
	// post-training skill record.
	skills.TotalSP += skillPointBase * float64(entry.TargetLevel) * skills.Skills[entry.SkillID].TrainingMultiplier
}

// QueueSkillTraining appends a train to the FIFO queue. Targets outside 1..5
// and targets the skill already satisfies are rejected.
func QueueSkillTraining(w *world.World, id types.EntityID, skillID string, targetLevel int) error {
	if targetLevel < minSkillLevel || targetLevel > maxSkillLevel {
		return eris.Wrapf(ErrInvalidArgument, "target level %d outside %d..%d",
			targetLevel, minSkillLevel, maxSkillLevel)
	}
	skills, err := world.Get[component.SkillSet](w, id)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no skill set", id)
	}
	sk, ok := skills.Skills[skillID]
	if !ok {
		return eris.Wrapf(ErrNotFound, "unknown skill %q", skillID)
	}
	if targetLevel <= sk.Level {
		return eris.Wrapf(ErrInvalidState, "skill %q already trained to level %d", skillID, sk.Level)
	}
	skills.TrainingQueue = append(skills.TrainingQueue, component.TrainingEntry{
		SkillID:       skillID,
		TargetLevel:   targetLevel,
		TimeRemaining: trainingTimeBase * float64(targetLevel) * sk.TrainingMultiplier,
	})
	return nil
}

// TrainSkillInstant sets a skill level directly and adds flat SP, bypassing
// the queue. Administrative use only.
func TrainSkillInstant(w *world.World, id types.EntityID, skillID string, level int, sp float64) error {
	skills, err := world.Get[component.SkillSet](w, id)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no skill set", id)
	}
	sk, ok := skills.Skills[skillID]
	if !ok {
		return eris.Wrapf(ErrNotFound, "unknown skill %q", skillID)
	}
	sk.Level = level
	skills.Skills[skillID] = sk
	skills.TotalSP += sp
	return nil
}

// TrainingQueue returns a copy of the entity's pending trains.
func TrainingQueue(w *world.World, id types.EntityID) ([]component.TrainingEntry, error) {
	skills, err := world.Get[component.SkillSet](w, id)
	if err != nil {
		return nil, eris.Wrapf(ErrNotFound, "entity %s has no skill set", id)
	}
	queue := make([]component.TrainingEntry, len(skills.TrainingQueue))
	copy(queue, skills.TrainingQueue)
	return queue, nil
}
