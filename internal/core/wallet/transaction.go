package wallet

import (
	"time"

	"personalfinancedss/internal/core/money"
)

// Canonical transaction category tags, per spec.md §4.E. Nodes must use
// these exact strings so downstream analytics and audits can group by
// category without fuzzy matching.
const (
	CategoryIncomeSalary     = "income:salary"
	CategoryIncomeVariable   = "income:variable"
	CategoryIncomeInvestment = "income:investment"
	CategoryExpenseFixed     = "expense:fixed"
	CategoryExpenseVariable  = "expense:variable"
	CategoryExpenseCondition = "expense:conditional"
	CategoryExpenseDebt      = "expense:debt"
	CategoryTaxIncome        = "tax:income"
	CategoryLiquidation      = "liquidation"
	CategoryInvestment       = "investment"
	CategoryBankruptcy       = "bankruptcy"
)

// Transaction is one ledger entry appended to a wallet's history. Amount is
// signed: positive is a credit, negative is a debit. BalanceAfter is a
// snapshot of the wallet balance taken immediately after the entry was
// applied, which is the sole observable a test can use to assert
// execution ordering from the ledger alone (spec.md §9).
type Transaction struct {
	Timestamp    time.Time
	Amount       money.Amount
	Description  string
	Category     string
	BalanceAfter money.Amount
}
