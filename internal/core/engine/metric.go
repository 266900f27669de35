package engine

import (
	"time"

	"personalfinancedss/internal/core/money"
)

// DailyMetric is one row of the per-day observable series the driver
// records, per spec.md §4.F step d. Analytics operates on the float
// projection of Balance across a run's DailyMetric slice.
type DailyMetric struct {
	Date         time.Time
	Balance      money.Amount
	CreditScore  money.Amount
	TotalAssets  money.Amount
	TotalDebt    money.Amount
	NetWorth     money.Amount
	LiquidAssets money.Amount
}
