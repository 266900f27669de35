package nodes

import (
	"personalfinancedss/internal/core/dag"
	"personalfinancedss/internal/core/money"
	"personalfinancedss/internal/core/wallet"
)

// TaxBracket is one progressive-tax band: income in [Lower, Upper) is taxed
// at Rate. Upper of money.Zero with Unbounded true means no ceiling.
type TaxBracket struct {
	Lower     money.Amount
	Upper     money.Amount
	Unbounded bool
	Rate      money.Amount
}

// DefaultTaxBrackets mirrors spec.md §4.E's US-style test anchor:
// (0,10k,10%), (10k,40k,12%), (40k,85k,22%), (85k,160k,24%), (160k,∞,32%).
func DefaultTaxBrackets() []TaxBracket {
	pct := func(p int64) money.Amount { return money.New(p).Div(money.New(100)) }
	return []TaxBracket{
		{Lower: money.New(0), Upper: money.New(10000), Rate: pct(10)},
		{Lower: money.New(10000), Upper: money.New(40000), Rate: pct(12)},
		{Lower: money.New(40000), Upper: money.New(85000), Rate: pct(22)},
		{Lower: money.New(85000), Upper: money.New(160000), Rate: pct(24)},
		{Lower: money.New(160000), Unbounded: true, Rate: pct(32)},
	}
}

// IncomeTaxNode walks progressive brackets over total_income_ytd once a
// year, grounded on the teacher's AreumTech-Chubby.fyi state tax calculator
// accumulation idiom: min(remaining, upper-lower) * rate per bracket.
type IncomeTaxNode struct {
	id           string
	deps         []string
	brackets     []TaxBracket
	paymentMonth int
	paymentDay   int
	lastYearPaid int
}

// NewIncomeTaxNode constructs an IncomeTaxNode. paymentMonth/paymentDay
// default to December 31 when zero.
func NewIncomeTaxNode(id string, brackets []TaxBracket, paymentMonth, paymentDay int, deps ...string) *IncomeTaxNode {
	if paymentMonth == 0 {
		paymentMonth = 12
	}
	if paymentDay == 0 {
		paymentDay = 31
	}
	return &IncomeTaxNode{id: id, deps: deps, brackets: brackets, paymentMonth: paymentMonth, paymentDay: paymentDay, lastYearPaid: -1}
}

func (n *IncomeTaxNode) ID() string             { return n.id }
func (n *IncomeTaxNode) Dependencies() []string { return n.deps }

func (n *IncomeTaxNode) Execute(state *wallet.State, ctx *dag.Context) money.Amount {
	today := ctx.CurrentDate
	if int(today.Month()) != n.paymentMonth || today.Day() != n.paymentDay || today.Year() == n.lastYearPaid {
		return money.Zero
	}
	n.lastYearPaid = today.Year()

	remaining := state.TotalIncomeYTD
	tax := money.Zero

	for _, b := range n.brackets {
		if !remaining.IsPos() {
			break
		}

		var span money.Amount
		if b.Unbounded {
			span = remaining
		} else {
			span = money.Min(remaining, b.Upper.Sub(b.Lower))
		}
		if span.IsNeg() {
			continue
		}

		tax = tax.Add(span.Mul(b.Rate))
		remaining = remaining.Sub(span)
	}

	state.Debit(tax, "income tax", wallet.CategoryTaxIncome)
	state.TaxesPaidYTD = state.TaxesPaidYTD.Add(tax)
	return tax
}
