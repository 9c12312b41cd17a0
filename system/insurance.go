package system

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/shifty81/EVEOFFLINE-sub004/component"
	"github.com/shifty81/EVEOFFLINE-sub004/types"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// insuranceTier maps a tier name to its coverage fraction and premium rate.
type insuranceTier struct {
	coverage float64
	premium  float64
}

var insuranceTiers = map[string]insuranceTier{
	"basic":    {coverage: 0.5, premium: 0.1},
	"standard": {coverage: 0.7, premium: 0.2},
	"platinum": {coverage: 1.0, premium: 0.3},
}

// InsuranceSystem decays policy durations. A policy whose duration runs out
// lapses; a lapsed policy can never be claimed.
type InsuranceSystem struct{}

func NewInsuranceSystem() *InsuranceSystem { return &InsuranceSystem{} }

func (*InsuranceSystem) Name() string { return "insurance" }

func (*InsuranceSystem) Update(w *world.World, dt float64) error {
	w.Each(types.KindInsurancePolicy, func(id types.EntityID) bool {
		policy, err := world.Get[component.InsurancePolicy](w, id)
		if err != nil || !policy.Active {
			return true
		}
		policy.DurationRemaining -= dt
		if policy.DurationRemaining <= 0 {
			policy.DurationRemaining = 0
			policy.Active = false
		}
		return true
	})
	return nil
}

// PurchaseInsurance attaches a policy to a ship. The premium is debited from
// the owner up front and the payout is frozen at purchase time; later changes
// to the ship's value do not move it. Purchasing again replaces any existing
// policy on the ship.
func PurchaseInsurance(
	w *world.World,
	shipID, ownerID types.EntityID,
	tier string,
	shipValue, duration float64,
) (string, error) {
	t, ok := insuranceTiers[tier]
	if !ok {
		return "", eris.Wrapf(ErrInvalidArgument, "unknown insurance tier %q", tier)
	}
	if shipValue <= 0 {
		return "", eris.Wrapf(ErrInvalidArgument, "ship value must be positive, got %f", shipValue)
	}
	if !w.Exists(shipID) {
		return "", eris.Wrapf(ErrNotFound, "ship %s does not exist", shipID)
	}
	owner, err := world.Get[component.Player](w, ownerID)
	if err != nil {
		return "", eris.Wrapf(ErrNotFound, "owner %s has no wallet", ownerID)
	}
	premium := shipValue * t.premium
	if owner.ISK < premium {
		return "", eris.Wrapf(ErrInsufficientResource,
			"premium %.2f exceeds balance %.2f", premium, owner.ISK)
	}
	owner.ISK -= premium

	policy := component.InsurancePolicy{
		PolicyID:          uuid.NewString(),
		OwnerID:           ownerID,
		Tier:              tier,
		CoverageFraction:  t.coverage,
		PremiumPaid:       premium,
		PayoutValue:       shipValue * t.coverage,
		Active:            true,
		Claimed:           false,
		DurationRemaining: duration,
	}
	if err := world.Set(w, shipID, &policy); err != nil {
		return "", err
	}
	return policy.PolicyID, nil
}

// ClaimInsurance pays out a policy exactly once. The Claimed latch, not
// deletion, is what blocks a second payout: replayed claims get 0 and an
// error.
func ClaimInsurance(w *world.World, shipID types.EntityID) (float64, error) {
	policy, err := world.Get[component.InsurancePolicy](w, shipID)
	if err != nil {
		return 0, eris.Wrapf(ErrNotFound, "ship %s has no insurance policy", shipID)
	}
	if !policy.Active {
		return 0, eris.Wrapf(ErrInvalidState, "policy %s has lapsed", policy.PolicyID)
	}
	if policy.Claimed {
		return 0, eris.Wrapf(ErrInvalidState, "policy %s was already claimed", policy.PolicyID)
	}
	owner, err := world.Get[component.Player](w, policy.OwnerID)
	if err != nil {
		w.MissingComponent(policy.OwnerID, types.KindPlayer)
		return 0, eris.Wrapf(ErrNotFound, "policy owner %s has no wallet", policy.OwnerID)
	}
	policy.Claimed = true
	owner.ISK += policy.PayoutValue
	return policy.PayoutValue, nil
}
