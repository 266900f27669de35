package wallet

import (
	"time"

	"personalfinancedss/internal/core/money"
)

// Config holds the parameters the driver needs to initialize a simulation,
// per spec.md §3.
type Config struct {
	StartDate          time.Time
	EndDate            time.Time // inclusive
	InitialBalance     money.Amount
	InitialCreditScore money.Amount
	RandomSeed         int64
	BaseCurrency       string // informational only
}

// DefaultInitialCreditScore is spec.md's documented default (700) for
// configs that don't set one explicitly.
var DefaultInitialCreditScore = money.New(700)
