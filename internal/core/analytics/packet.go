package analytics

import (
	"time"

	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// Packet is the external output schema, per spec.md §6. All monetary
// fields are money.Amount, which MarshalJSON renders as canonical decimal
// strings so precision survives the JSON boundary. The emitter (the
// json.Marshal call itself) stays out of core — callers decide when and
// how to serialize a Packet.
type Packet struct {
	Meta                     Meta                     `json:"meta"`
	FinalState               FinalStatePacket         `json:"final_state"`
	StatisticalDistributions StatisticalDistributions `json:"statistical_distributions"`
	RiskMetrics              RiskMetrics              `json:"risk_metrics"`
	PortfolioHealth          PortfolioHealth          `json:"portfolio_health"`
	BehavioralMetrics        BehavioralMetrics        `json:"behavioral_metrics"`
}

type Meta struct {
	GeneratedAt      time.Time `json:"generated_at"`
	SimulationPeriod Period    `json:"simulation_period"`
	RandomSeed       int64     `json:"random_seed"`
}

type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type FinalStatePacket struct {
	Balance     money.Amount `json:"balance"`
	CreditScore money.Amount `json:"credit_score"`
	TotalAssets money.Amount `json:"total_assets"`
	TotalDebt   money.Amount `json:"total_debt"`
	NetWorth    money.Amount `json:"net_worth"`
}

type StatisticalDistributions struct {
	FinalBalance  money.Amount  `json:"final_balance"`
	ExpectedValue *money.Amount `json:"expected_value,omitempty"`
	Percentile5   *money.Amount `json:"percentile_5,omitempty"`
	Percentile50  *money.Amount `json:"percentile_50,omitempty"`
	Percentile95  *money.Amount `json:"percentile_95,omitempty"`
}

type RiskMetrics struct {
	CollapseProbability  float64 `json:"collapse_probability"`
	ShockResilienceIndex float64 `json:"shock_resilience_index"`
	BalanceVolatility    float64 `json:"balance_volatility"`
}

type PortfolioHealth struct {
	NetAssetValue     money.Amount `json:"net_asset_value"`
	LiquidityRatio    float64      `json:"liquidity_ratio"`
	DebtToIncomeRatio float64      `json:"debt_to_income_ratio"`
}

type BehavioralMetrics struct {
	FinancialVibeScore       float64       `json:"financial_vibe_score"`
	FinancialVibeDescription string        `json:"financial_vibe_description"`
	PetState                 string        `json:"pet_state"`
	RecoverySlope            *money.Amount `json:"recovery_slope,omitempty"`
}

// liquidityRatioSentinel is returned when total_debt is zero, per
// spec.md §7's division-guard policy (arithmetic never panics).
const liquidityRatioSentinel = 999

// GeneratePacket assembles the §6 output packet from a completed result,
// its daily balance series (float projection), and an optional
// cross-scenario percentile set produced by a scenario sweep. It also fills
// result's optional analytics fields with the same values.
func GeneratePacket(result *wallet.Result, balances []float64, multi *PercentileSet) *Packet {
	fs := result.FinalState

	vibe := FinancialVibe(balances)
	slope := RecoverySlope(balances)

	var slopeAmount *money.Amount
	if slope != nil {
		a := money.FromFloat(*slope)
		slopeAmount = &a
	}

	liquidityRatio := float64(liquidityRatioSentinel)
	totalDebt := fs.TotalDebt()
	if !totalDebt.IsZero() {
		liquidityRatio = fs.LiquidAssets().Add(fs.Balance).Div(totalDebt).Float64()
	}

	debtToIncome := 0.0
	if !fs.TotalIncomeYTD.IsZero() {
		debtToIncome = totalDebt.Div(fs.TotalIncomeYTD).Float64()
	}

	packet := &Packet{
		Meta: Meta{
			GeneratedAt: time.Now().UTC(),
			SimulationPeriod: Period{
				Start: result.Config.StartDate,
				End:   result.Config.EndDate,
			},
			RandomSeed: result.Config.RandomSeed,
		},
		FinalState: FinalStatePacket{
			Balance:     fs.Balance,
			CreditScore: fs.CreditScore,
			TotalAssets: fs.TotalAssets(),
			TotalDebt:   totalDebt,
			NetWorth:    fs.NetWorth(),
		},
		StatisticalDistributions: StatisticalDistributions{
			FinalBalance: result.FinalBalance,
		},
		RiskMetrics: RiskMetrics{
			CollapseProbability:  CollapseProbability(balances),
			ShockResilienceIndex: ShockResilience(balances, fs.LiquidAssets().Float64(), fs.Balance.Float64()),
			BalanceVolatility:    Volatility(balances),
		},
		PortfolioHealth: PortfolioHealth{
			NetAssetValue:     fs.NetWorth(),
			LiquidityRatio:    liquidityRatio,
			DebtToIncomeRatio: debtToIncome,
		},
		BehavioralMetrics: BehavioralMetrics{
			FinancialVibeScore:       vibe.Score,
			FinancialVibeDescription: vibe.Description,
			PetState:                 PetState(vibe.Score),
			RecoverySlope:            slopeAmount,
		},
	}

	if multi != nil {
		ev := money.FromFloat(multi.Mean)
		p5 := money.FromFloat(multi.P5)
		p50 := money.FromFloat(multi.P50)
		p95 := money.FromFloat(multi.P95)
		packet.StatisticalDistributions.ExpectedValue = &ev
		packet.StatisticalDistributions.Percentile5 = &p5
		packet.StatisticalDistributions.Percentile50 = &p50
		packet.StatisticalDistributions.Percentile95 = &p95
	}

	nav := packet.PortfolioHealth.NetAssetValue
	collapse := packet.RiskMetrics.CollapseProbability
	rsi := packet.RiskMetrics.ShockResilienceIndex
	vibeScore, pet := vibe.Score, packet.BehavioralMetrics.PetState
	result.CollapseProbability, result.ShockResilience = &collapse, &rsi
	result.NetAssetValue, result.LiquidityRatio = &nav, &liquidityRatio
	result.FinancialVibe, result.PetState = &vibeScore, &pet
	result.RecoverySlope = slopeAmount
	result.ExpectedValue = packet.StatisticalDistributions.ExpectedValue
	result.Percentile5 = packet.StatisticalDistributions.Percentile5
	result.Percentile50 = packet.StatisticalDistributions.Percentile50
	result.Percentile95 = packet.StatisticalDistributions.Percentile95

	return packet
}
