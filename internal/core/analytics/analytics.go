// Package analytics derives behavioral and risk metrics from a
// simulation's daily balance series, per spec.md §4.H. All formulas are
// float projections of the underlying decimal series — analytics is the
// one package in the core that is allowed to call money.Amount.Float64
// freely, per spec.md §9's "named boundary crossings" design note.
// Volatility and FinancialVibe's stdev term lean on gonum.org/v1/gonum/stat
// instead of a hand-rolled stdlib loop, grounded in AreumTech-Chubby.fyi's
// and parsdao-pars's shared gonum dependency; Percentiles sorts and indexes
// without gonum (see its doc).
package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// VibeResult is FinancialVibe's score-plus-descriptor pair.
type VibeResult struct {
	Score       float64
	Description string
}

// FinancialVibe scores the last min(30, len(balances)) days. Fewer than 7
// days yields a neutral default rather than a statistically meaningless
// score.
func FinancialVibe(balances []float64) VibeResult {
	if len(balances) < 7 {
		return VibeResult{Score: 50, Description: "Neutral"}
	}

	window := balances
	if len(window) > 30 {
		window = window[len(window)-30:]
	}

	avg := mean(window)
	trend := window[len(window)-1] - window[0]
	volatility := stat.StdDev(window, nil)

	var score float64
	switch {
	case avg > 50000:
		score = 80
	case avg > 10000:
		score = 60
	case avg > 0:
		score = 40
	default:
		score = 20
	}

	if trend > 1000 {
		score += 15
	} else if trend < -1000 {
		score -= 15
	}
	if volatility > 10000 {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return VibeResult{Score: score, Description: vibeDescription(score)}
}

func vibeDescription(score float64) string {
	switch {
	case score >= 80:
		return "Thriving"
	case score >= 60:
		return "Stable"
	case score >= 40:
		return "Cautious"
	case score >= 20:
		return "Stressed"
	default:
		return "Critical"
	}
}

// PetState maps a vibe score onto a mood label.
func PetState(vibeScore float64) string {
	switch {
	case vibeScore >= 80:
		return "Celebrating"
	case vibeScore >= 60:
		return "Happy"
	case vibeScore >= 40:
		return "Neutral"
	case vibeScore >= 20:
		return "Anxious"
	default:
		return "Panicking"
	}
}

// RecoverySlope scans for the last maximal run of days with balance < 0.
// It returns nil if the series never went negative. If the negative
// period ends but fewer than 30 forward days remain to measure a slope,
// it returns a pointer to 0 rather than nil — spec.md §9 documents this
// nil/0 duality deliberately; do not collapse the two cases.
func RecoverySlope(balances []float64) *float64 {
	lastNegativeEnd := -1
	inNegative := false
	for i, b := range balances {
		if b < 0 {
			inNegative = true
			continue
		}
		if inNegative {
			lastNegativeEnd = i - 1
			inNegative = false
		}
	}
	if inNegative {
		lastNegativeEnd = len(balances) - 1
	}

	if lastNegativeEnd < 0 {
		return nil
	}

	k := lastNegativeEnd
	if k+30 < len(balances) {
		slope := (balances[k+30] - balances[k]) / 30
		return &slope
	}

	zero := 0.0
	return &zero
}

// CollapseProbability is the fraction of days with a negative balance.
func CollapseProbability(balances []float64) float64 {
	if len(balances) == 0 {
		return 0
	}
	negDays := 0
	for _, b := range balances {
		if b < 0 {
			negDays++
		}
	}
	return float64(negDays) / float64(len(balances))
}

// ShockResilience estimates how many months of expenses current liquidity
// covers. With fewer than 30 days of history it falls back to the default
// 1000 monthly-expense assumption baked into the formula.
func ShockResilience(balances []float64, currentLiquid, currentBalance float64) float64 {
	monthlyExpense := 1000.0
	if len(balances) >= 30 {
		net := balances[len(balances)-1] - balances[len(balances)-30]
		if net < 0 {
			monthlyExpense = -net
		}
	}

	if monthlyExpense == 0 {
		return 10
	}

	rsi := (currentLiquid + currentBalance) / monthlyExpense
	if rsi < 0 {
		rsi = 0
	}
	if rsi > 10 {
		rsi = 10
	}
	return rsi
}

// Volatility is the standard deviation of the balance series, 0 for fewer
// than 2 samples (stat.StdDev is undefined there).
func Volatility(balances []float64) float64 {
	if len(balances) < 2 {
		return 0
	}
	return stat.StdDev(balances, nil)
}

// PercentileSet holds the cross-scenario distribution summary, per
// spec.md §4.H.
type PercentileSet struct {
	Mean float64
	P5   float64
	P50  float64
	P95  float64
}

// Percentiles sorts values and indexes at floor(p*n), clamped to
// [0, n-1]. This is spec.md §9's documented biased index formula, kept
// deliberately instead of gonum's own interpolated stat.Quantile so
// cross-implementation results match bit-for-bit.
func Percentiles(values []float64) PercentileSet {
	if len(values) == 0 {
		return PercentileSet{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := func(p float64) float64 {
		i := int(p * float64(len(sorted)))
		if i < 0 {
			i = 0
		}
		if i > len(sorted)-1 {
			i = len(sorted) - 1
		}
		return sorted[i]
	}

	return PercentileSet{
		Mean: mean(sorted),
		P5:   idx(0.05),
		P50:  idx(0.50),
		P95:  idx(0.95),
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
