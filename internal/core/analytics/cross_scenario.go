package analytics

import "personalfinancedss/internal/core/wallet"

// CrossScenarioReport summarizes a scenario sweep's final balances,
// supplementing the distilled spec's statistical_distributions packet
// fields (expected_value, percentile_5/50/95) with an actual producer: a
// single engine run has no population to take percentiles over, so these
// fields need a sweep's worth of independent runs (SPEC_FULL.md §4.H).
type CrossScenarioReport struct {
	SampleSize  int
	Percentiles PercentileSet
}

// BuildCrossScenarioReport takes the final balances of a completed
// scenario sweep and computes the percentile set GeneratePacket's
// multi-scenario argument expects.
func BuildCrossScenarioReport(results []*wallet.Result) CrossScenarioReport {
	finalBalances := make([]float64, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		finalBalances = append(finalBalances, r.FinalBalance.Float64())
	}

	return CrossScenarioReport{
		SampleSize:  len(finalBalances),
		Percentiles: Percentiles(finalBalances),
	}
}
