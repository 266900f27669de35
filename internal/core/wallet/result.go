package wallet

import "personalfinancedss/internal/core/money"

// Result is the outcome of a completed (or bankrupted) simulation run,
// per spec.md §3. The analytics-derived fields are optional and populated
// by internal/core/analytics, not by the driver itself.
type Result struct {
	Config       Config
	FinalState   *State
	TimelineID   string
	FinalBalance money.Amount

	// Populated by analytics.GeneratePacket, nil until then.
	ExpectedValue       *money.Amount
	Percentile5         *money.Amount
	Percentile50        *money.Amount
	Percentile95        *money.Amount
	CollapseProbability *float64
	ShockResilience     *float64
	RecoverySlope       *money.Amount
	NetAssetValue       *money.Amount
	LiquidityRatio      *float64
	FinancialVibe       *float64
	PetState            *string
}
