package system

import (
	"sync/atomic"

	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// jobCounter issues process-unique, monotonically increasing job ids.
var jobCounter atomic.Int64

// JobRequest is the caller-facing description of a production batch.
type JobRequest struct {
	OwnerID        types.EntityID
	BlueprintID    string
	OutputItemID   string
	OutputItemName string
	Runs           int
	TimePerRun     float64
	InstallCost    float64
}

// ManufacturingSystem progresses active jobs. Terminal jobs stay in the
// facility's list as flagged records so indices remain stable.
type ManufacturingSystem struct{}

func NewManufacturingSystem() *ManufacturingSystem { return &ManufacturingSystem{} }

func (*ManufacturingSystem) Name() string { return "manufacturing" }

func (*ManufacturingSystem) Update(w *world.World, dt float64) error {
	w.Each(types.KindManufacturingFacility, func(id types.EntityID) bool {
		facility, err := world.Get[component.ManufacturingFacility](w, id)
		if err != nil {
			return true
		}
		for i := range facility.Jobs {
			job := &facility.Jobs[i]
			if job.Status != component.JobActive {
				continue
			}
			job.TimeRemaining -= dt
			if job.TimeRemaining > 0 {
				continue
			}
			job.RunsCompleted++
			if job.RunsCompleted < job.Runs {
				job.TimeRemaining = job.TimePerRun
			} else {
				job.Status = component.JobCompleted
			}
		}
		return true
	})
	return nil
}

// StartJob installs a new job in a facility, debiting the install cost from
// the owner on success.
func StartJob(w *world.World, facilityID types.EntityID, req JobRequest) (int64, error) {
	if req.Runs < 1 {
		return 0, eris.Wrapf(ErrInvalidArgument, "runs must be at least 1, got %d", req.Runs)
	}
	if req.TimePerRun <= 0 {
		return 0, eris.Wrapf(ErrInvalidArgument, "time per run must be positive, got %f", req.TimePerRun)
	}
	facility, err := world.Get[component.ManufacturingFacility](w, facilityID)
	if err != nil {
		return 0, eris.Wrapf(ErrNotFound, "entity %s has no manufacturing facility", facilityID)
	}
	if facility.ActiveJobCount() >= facility.MaxJobs {
		return 0, eris.Wrapf(ErrInsufficientResource,
			"facility %s has no free job slots (%d max)", facilityID, facility.MaxJobs)
	}
	owner, err := world.Get[component.Player](w, req.OwnerID)
	if err != nil {
		return 0, eris.Wrapf(ErrNotFound, "owner %s has no wallet", req.OwnerID)
	}
	if owner.ISK < req.InstallCost {
		return 0, eris.Wrapf(ErrInsufficientResource,
			"install cost %.2f exceeds balance %.2f", req.InstallCost, owner.ISK)
	}
	owner.ISK -= req.InstallCost

	jobID := jobCounter.Add(1)
	facility.Jobs = append(facility.Jobs, component.ManufacturingJob{
		JobID:          jobID,
		BlueprintID:    req.BlueprintID,
		OwnerID:        req.OwnerID,
		OutputItemID:   req.OutputItemID,
		OutputItemName: req.OutputItemName,
		Runs:           req.Runs,
		RunsCompleted:  0,
		TimePerRun:     req.TimePerRun,
		TimeRemaining:  req.TimePerRun,
		InstallCost:    req.InstallCost,
		Status:         component.JobActive,
	})
	return jobID, nil
}

// CancelJob moves an active job to cancelled. Terminal jobs cannot be
// cancelled or restarted; the install cost is not refunded.
func CancelJob(w *world.World, facilityID types.EntityID, jobID int64) error {
	facility, err := world.Get[component.ManufacturingFacility](w, facilityID)
	if err != nil {
		return eris.Wrapf(ErrNotFound, "entity %s has no manufacturing facility", facilityID)
	}
	for i := range facility.Jobs {
		job := &facility.Jobs[i]
		if job.JobID != jobID {
			continue
		}
		if job.Status != component.JobActive {
			return eris.Wrapf(ErrInvalidState, "job %d is %s, not active", jobID, job.Status)
		}
		job.Status = component.JobCancelled
		return nil
	}
	return eris.Wrapf(ErrNotFound, "job %d not found in facility %s", jobID, facilityID)
}
