package wallet

import "personalfinancedss/internal/core/money"

// Debt is one liability tracked on a wallet, serviced monthly by
// DebtPaymentNode (spec.md §4.E).
type Debt struct {
	Name           string
	Principal      money.Amount
	InterestRate   money.Amount // annual rate, e.g. 0.06 for 6%
	MonthlyPayment money.Amount
	MissedPayments int
}

// NewDebt validates that principal, rate, and payment are non-negative.
func NewDebt(name string, principal, rate, monthlyPayment money.Amount) (Debt, error) {
	if principal.IsNeg() {
		return Debt{}, newRangeErr("principal", principal.StringExact(), "principal >= 0")
	}
	if rate.IsNeg() {
		return Debt{}, newRangeErr("interest_rate", rate.StringExact(), "interest_rate >= 0")
	}
	if monthlyPayment.IsNeg() {
		return Debt{}, newRangeErr("monthly_payment", monthlyPayment.StringExact(), "monthly_payment >= 0")
	}
	return Debt{Name: name, Principal: principal, InterestRate: rate, MonthlyPayment: monthlyPayment}, nil
}

// Clone returns an independent copy.
func (d Debt) Clone() Debt { return d }
