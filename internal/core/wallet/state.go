package wallet

import (
	"time"

	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/rng"
)

// CreditScoreFloor and CreditScoreCeiling bound credit_score, per
// spec.md §3.
var (
	CreditScoreFloor   = money.New(300)
	CreditScoreCeiling = money.New(850)
)

// State is the full financial position at a simulated date: balance,
// assets, debts, transaction history, year-to-date accumulators, and the
// RNG state needed to reproduce subsequent draws after a restore. It is
// created once by the driver and mutated only by nodes during a day's
// execution and by the driver when advancing the date, per spec.md §3.
type State struct {
	CurrentDate time.Time
	Balance     money.Amount
	CreditScore money.Amount
	Assets      *AssetSet
	Debts       []Debt

	TransactionHistory []Transaction

	TotalIncomeYTD   money.Amount
	TotalExpensesYTD money.Amount
	TaxesPaidYTD     money.Amount

	RNGState rng.State

	// IsBankrupt is set by BankruptcyCheckNode and observed by the driver
	// to terminate the simulation on the day it first becomes true.
	IsBankrupt bool
}

// New constructs the initial wallet state from a SimulationConfig. A zero
// InitialCreditScore takes DefaultInitialCreditScore.
func New(cfg Config) (*State, error) {
	if cfg.InitialCreditScore.IsZero() {
		cfg.InitialCreditScore = DefaultInitialCreditScore
	}
	if cfg.InitialCreditScore.LessThan(CreditScoreFloor) || cfg.InitialCreditScore.GreaterThan(CreditScoreCeiling) {
		return nil, newRangeErr("credit_score", cfg.InitialCreditScore.StringExact(), "credit_score in [300,850]")
	}
	return &State{
		CurrentDate: cfg.StartDate,
		Balance:     cfg.InitialBalance,
		CreditScore: cfg.InitialCreditScore,
		Assets:      NewAssetSet(),
		Debts:       nil,

		TotalIncomeYTD:   money.Zero,
		TotalExpensesYTD: money.Zero,
		TaxesPaidYTD:     money.Zero,
	}, nil
}

// Append records a transaction, setting BalanceAfter to the wallet's
// current balance. Callers must update Balance before calling Append so
// the invariant `transaction_history[i].balance_after == balance at append
// time` (spec.md §3) holds by construction.
func (s *State) Append(amount money.Amount, description, category string) {
	s.TransactionHistory = append(s.TransactionHistory, Transaction{
		Timestamp:    s.CurrentDate,
		Amount:       amount,
		Description:  description,
		Category:     category,
		BalanceAfter: s.Balance,
	})
}

// Credit increases the balance and appends a credit transaction.
func (s *State) Credit(amount money.Amount, description, category string) {
	s.Balance = s.Balance.Add(amount)
	s.Append(amount, description, category)
}

// Debit decreases the balance and appends a debit transaction. The wallet
// is allowed to go negative (spec.md §4.E FixedExpenseNode) — reacting to
// a negative balance is LiquidationNode's job, not Debit's.
func (s *State) Debit(amount money.Amount, description, category string) {
	s.Balance = s.Balance.Sub(amount)
	s.Append(amount.Neg(), description, category)
}

// ClampCreditScore enforces spec.md's [300, 850] invariant. Called by
// CreditScoreNode after adjusting the score; BankruptcyCheckNode sets the
// floor value directly.
func (s *State) ClampCreditScore() {
	s.CreditScore = money.Clamp(s.CreditScore, CreditScoreFloor, CreditScoreCeiling)
}

// TotalAssets is a derived accessor, per spec.md §3.
func (s *State) TotalAssets() money.Amount { return s.Assets.Total() }

// LiquidAssets is a derived accessor, per spec.md §3.
func (s *State) LiquidAssets() money.Amount { return s.Assets.Liquid() }

// TotalDebt is a derived accessor, per spec.md §3.
func (s *State) TotalDebt() money.Amount {
	total := money.Zero
	for _, d := range s.Debts {
		total = total.Add(d.Principal)
	}
	return total
}

// NetWorth is a derived accessor, per spec.md §3.
func (s *State) NetWorth() money.Amount {
	return s.Balance.Add(s.TotalAssets()).Sub(s.TotalDebt())
}

// TotalMissedPayments sums MissedPayments across every debt, used by
// CreditScoreNode's punctuality impact term.
func (s *State) TotalMissedPayments() int {
	total := 0
	for _, d := range s.Debts {
		total += d.MissedPayments
	}
	return total
}

// DeepCopy returns a wallet state with no aliasing to the receiver —
// mutating the copy (or the original) afterward never affects the other.
// This is the property snapshots and branch creation depend on
// (spec.md §5 "no aliasing between snapshot and live state is permitted").
func (s *State) DeepCopy() *State {
	debts := make([]Debt, len(s.Debts))
	copy(debts, s.Debts)

	history := make([]Transaction, len(s.TransactionHistory))
	copy(history, s.TransactionHistory)

	return &State{
		CurrentDate:        s.CurrentDate,
		Balance:            s.Balance,
		CreditScore:        s.CreditScore,
		Assets:             s.Assets.Clone(),
		Debts:              debts,
		TransactionHistory: history,
		TotalIncomeYTD:     s.TotalIncomeYTD,
		TotalExpensesYTD:   s.TotalExpensesYTD,
		TaxesPaidYTD:       s.TaxesPaidYTD,
		RNGState:           s.RNGState.Clone(),
		IsBankrupt:         s.IsBankrupt,
	}
}
