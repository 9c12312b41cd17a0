package component

import "github.com/shifty81/EVEOFFLINE-sub004/types"

// JobStatus is the lifecycle state of a manufacturing job. Jobs are appended
// and flagged terminal, never removed mid-tick, so indices stay stable while
// the facility is being iterated.
type JobStatus string

const (
	JobActive    JobStatus = "active"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

// ManufacturingJob is one production run batch inside a facility.
type ManufacturingJob struct {
	JobID          int64          `json:"job_id"`
	BlueprintID    string         `json:"blueprint_id"`
	OwnerID        types.EntityID `json:"owner_id"`
	OutputItemID   string         `json:"output_item_id"`
	OutputItemName string         `json:"output_item_name"`
	Runs           int            `json:"runs"`
	RunsCompleted  int            `json:"runs_completed"`
	TimePerRun     float64        `json:"time_per_run"`
	TimeRemaining  float64        `json:"time_remaining"`
	InstallCost    float64        `json:"install_cost"`
	Status         JobStatus      `json:"status"`
}

// ManufacturingFacility hosts production jobs up to MaxJobs concurrently
// active ones.
type ManufacturingFacility struct {
	Jobs    []ManufacturingJob `json:"jobs"`
	MaxJobs int                `json:"max_jobs"`
}

func (ManufacturingFacility) Kind() types.ComponentKind { return types.KindManufacturingFacility }

// ActiveJobCount returns the number of jobs still running.
func (f *ManufacturingFacility) ActiveJobCount() int {
	n := 0
	for i := range f.Jobs {
		if f.Jobs[i].Status == JobActive {
			n++
		}
	}
	return n
}

// InsurancePolicy is a hull insurance contract attached to the insured ship.
// PayoutValue is frozen at purchase time; Claimed is the at-most-once latch
// that makes double payouts impossible.
type InsurancePolicy struct {
	PolicyID          string         `json:"policy_id"`
	OwnerID           types.EntityID `json:"owner_id"`
	Tier              string         `json:"tier"`
	CoverageFraction  float64        `json:"coverage_fraction"`
	PremiumPaid       float64        `json:"premium_paid"`
	PayoutValue       float64        `json:"payout_value"`
	Active            bool           `json:"active"`
	Claimed           bool           `json:"claimed"`
	DurationRemaining float64        `json:"duration_remaining"`
}

func (InsurancePolicy) Kind() types.ComponentKind { return types.KindInsurancePolicy }
